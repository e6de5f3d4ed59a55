package surface

import (
	"testing"
	"time"
)

func TestFrameQueueOrder(t *testing.T) {
	var q FrameQueue
	var got []int
	q.RequestFrame(func(time.Duration) { got = append(got, 1) })
	q.RequestFrame(func(time.Duration) { got = append(got, 2) })
	if q.Pending() != 2 {
		t.Fatalf("Pending = %d", q.Pending())
	}
	if n := q.Run(0); n != 2 {
		t.Errorf("ran %d, want 2", n)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("order = %v", got)
	}
}

func TestFrameQueueHandlesUnique(t *testing.T) {
	var q FrameQueue
	a := q.RequestFrame(func(time.Duration) {})
	b := q.RequestFrame(func(time.Duration) {})
	if a == 0 || b == 0 || a == b {
		t.Errorf("handles %d %d", a, b)
	}
}

func TestFrameQueueRequeueWaitsForNextRun(t *testing.T) {
	var q FrameQueue
	n := 0
	var cb FrameCallback
	cb = func(time.Duration) {
		n++
		q.RequestFrame(cb)
	}
	q.RequestFrame(cb)
	q.Run(0)
	q.Run(0)
	if n != 2 {
		t.Errorf("runs = %d, want 2", n)
	}
	if q.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", q.Pending())
	}
}

func TestFrameQueueCancel(t *testing.T) {
	var q FrameQueue
	ran := false
	h := q.RequestFrame(func(time.Duration) { ran = true })
	q.CancelFrame(h)
	q.CancelFrame(h)
	q.CancelFrame(12345)
	if n := q.Run(0); n != 0 || ran {
		t.Errorf("ran = %v, n = %d", ran, n)
	}
}

func TestFrameQueueCancelDuringRun(t *testing.T) {
	var q FrameQueue
	var second FrameHandle
	ran := false
	q.RequestFrame(func(time.Duration) { q.CancelFrame(second) })
	second = q.RequestFrame(func(time.Duration) { ran = true })
	if n := q.Run(0); n != 1 {
		t.Errorf("ran %d, want 1", n)
	}
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestManualScheduler(t *testing.T) {
	var s ManualScheduler
	var seen []time.Duration
	var cb FrameCallback
	cb = func(now time.Duration) {
		seen = append(seen, now)
		s.RequestFrame(cb)
	}
	s.RequestFrame(cb)
	s.Step(10 * time.Millisecond)
	s.Step(5 * time.Millisecond)
	if s.Now() != 15*time.Millisecond {
		t.Errorf("Now = %v", s.Now())
	}
	if len(seen) != 2 || seen[0] != 10*time.Millisecond || seen[1] != 15*time.Millisecond {
		t.Errorf("seen = %v", seen)
	}
}

func TestStaticDisplay(t *testing.T) {
	d := StaticDisplay{Ratio: 2, Width: 100, Height: 50}
	var _ Display = d
	w, h := d.Size()
	if d.DevicePixelRatio() != 2 || w != 100 || h != 50 {
		t.Errorf("display = %v %v %v", d.DevicePixelRatio(), w, h)
	}
}
