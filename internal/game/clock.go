package game

import (
	"time"

	"github.com/Grzegon/FEND-ArcadeGame/internal/config"
)

// FrameClock turns wall-clock time into per-frame deltas. Ebiten paces
// Update to the display refresh; measuring real elapsed time keeps enemy
// motion speed-stable if a frame runs long.
type FrameClock struct {
	last time.Time
}

// Reset forgets the previous frame, so the first delta after a menu dwell
// is zero instead of the whole dwell.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}

// Tick returns seconds elapsed since the previous call, clamped to
// config.MaxFrameDelta. The first call after a Reset returns 0.
func (c *FrameClock) Tick() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt > config.MaxFrameDelta {
		dt = config.MaxFrameDelta
	}
	return dt
}
