package surface

import (
	"sync"
	"time"
)

// FrameCallback runs once on the next display refresh. now is the host's
// monotonic frame timestamp.
type FrameCallback func(now time.Duration)

// FrameHandle identifies a pending frame callback. Zero is never issued.
type FrameHandle uint64

// FrameScheduler is the host per-refresh scheduling primitive.
type FrameScheduler interface {
	RequestFrame(cb FrameCallback) FrameHandle
	CancelFrame(h FrameHandle)
}

// Display describes the host window the renderer is presented in.
type Display interface {
	DevicePixelRatio() float64
	// Size returns the logical size in device-independent units.
	Size() (width, height float64)
}

// FrameQueue holds pending callbacks in request order. Hosts embed it and
// call Run once per refresh.
type FrameQueue struct {
	mu       sync.Mutex
	next     FrameHandle
	pending  []queuedFrame
	inflight map[FrameHandle]bool
}

type queuedFrame struct {
	handle FrameHandle
	cb     FrameCallback
}

// RequestFrame implements FrameScheduler.
func (q *FrameQueue) RequestFrame(cb FrameCallback) FrameHandle {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.pending = append(q.pending, queuedFrame{handle: q.next, cb: cb})
	return q.next
}

// CancelFrame implements FrameScheduler. Unknown handles are ignored.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.inflight[h]; ok {
		q.inflight[h] = true
		return
	}
	for i, f := range q.pending {
		if f.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Run invokes every callback queued before the call, in order, and returns
// how many ran. Callbacks requested while running wait for the next Run.
// A callback cancelled by an earlier one in the same run is skipped.
func (q *FrameQueue) Run(now time.Duration) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.inflight = make(map[FrameHandle]bool, len(batch))
	for _, f := range batch {
		q.inflight[f.handle] = false
	}
	q.mu.Unlock()

	ran := 0
	for _, f := range batch {
		q.mu.Lock()
		cancelled := q.inflight[f.handle]
		delete(q.inflight, f.handle)
		q.mu.Unlock()
		if cancelled {
			continue
		}
		f.cb(now)
		ran++
	}
	return ran
}

// ManualScheduler is a FrameScheduler driven by explicit Step calls, for
// tests and headless rendering.
type ManualScheduler struct {
	FrameQueue
	now time.Duration
}

// Step advances the clock by dt and runs one refresh.
func (s *ManualScheduler) Step(dt time.Duration) int {
	s.now += dt
	return s.Run(s.now)
}

// Now returns the scheduler clock.
func (s *ManualScheduler) Now() time.Duration { return s.now }

// StaticDisplay is a Display with fixed values.
type StaticDisplay struct {
	Ratio         float64
	Width, Height float64
}

// DevicePixelRatio implements Display.
func (d StaticDisplay) DevicePixelRatio() float64 { return d.Ratio }

// Size implements Display.
func (d StaticDisplay) Size() (float64, float64) { return d.Width, d.Height }
