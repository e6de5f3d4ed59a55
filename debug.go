package canvas2d

import (
	"log/slog"
	"time"
)

// FrameStats holds per-frame counts and timing.
type FrameStats struct {
	// Drawn counts children whose Draw was called.
	Drawn int
	// Skipped counts invisible children.
	Skipped  int
	Duration time.Duration
}

// logFrameStats writes stats at debug level. Only called in debug mode.
func (r *Renderer2D) logFrameStats(stats FrameStats) {
	Logger().Debug("frame",
		slog.Int("drawn", stats.Drawn),
		slog.Int("skipped", stats.Skipped),
		slog.Duration("duration", stats.Duration),
		slog.Int("children", r.scene.Len()))
}
