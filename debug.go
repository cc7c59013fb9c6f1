package tagball

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing for a scene tick.
// Only populated when Scene.debug is true.
type frameStats struct {
	frame    uint64
	items    int
	paused   int
	drawTime time.Duration
	pointer  PointerState
}

// debugLog prints frame stats to stderr.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	for _, it := range s.items {
		if it.Paused() {
			stats.paused++
		}
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[tagball] frame %d | items: %d | paused: %d | draw: %v\n",
		stats.frame, stats.items, stats.paused, stats.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[tagball] pointer: (%.1f, %.1f) | axis: %.3f | radius: %.1f\n",
		stats.pointer.X, stats.pointer.Y, stats.pointer.Angle, stats.pointer.Radius)
}

// logf reports a non-fatal failure on stderr.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[tagball] "+format+"\n", args...)
}
