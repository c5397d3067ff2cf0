package debug

import (
	"fmt"
	"runtime"
	"time"

	"pyramids/internal/logger"
)

// Frame is what one pass of the frame loop submitted.
type Frame struct {
	Draws     int
	Failed    int
	Triangles int
}

// Totals accumulates frames since the Stats was created.
type Totals struct {
	Frames    uint64
	Draws     uint64
	Failed    uint64
	Triangles uint64
}

// Stats collects per-frame counters and reports them every Interval frames.
// The overlay text is only recomputed on those frames to limit allocations.
type Stats struct {
	Interval int
	log      *logger.Logger
	now      func() time.Time

	totals       Totals
	last         Frame
	windowStart  time.Time
	windowFrames int
	fps          float64
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Stats reporting through log every interval frames.
func New(log *logger.Logger, interval int) *Stats {
	if interval <= 0 {
		interval = 1
	}
	return &Stats{Interval: interval, log: log, now: time.Now}
}

// Observe records one frame. On every Interval-th frame a summary is logged.
func (s *Stats) Observe(f Frame) {
	if s.windowStart.IsZero() {
		s.windowStart = s.now()
	}
	s.totals.Frames++
	s.totals.Draws += uint64(f.Draws)
	s.totals.Failed += uint64(f.Failed)
	s.totals.Triangles += uint64(f.Triangles)
	s.last = f
	s.windowFrames++

	if s.windowFrames < s.Interval {
		return
	}
	now := s.now()
	if elapsed := now.Sub(s.windowStart).Seconds(); elapsed > 0 {
		s.fps = float64(s.windowFrames) / elapsed
	}
	runtime.ReadMemStats(&s.lastMemStats)
	s.lastFpsText = fmt.Sprintf("FPS: %.0f  draws: %d/%d", s.fps, f.Draws-f.Failed, f.Draws)
	s.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(s.lastMemStats.Alloc)/(1024*1024))
	s.windowStart = now
	s.windowFrames = 0

	s.log.Info("Frame stats",
		"frames", s.totals.Frames,
		"fps", fmt.Sprintf("%.1f", s.fps),
		"draws", f.Draws,
		"failed", f.Failed,
		"triangles", f.Triangles,
	)
}

// Totals returns the counters accumulated so far.
func (s *Stats) Totals() Totals {
	return s.totals
}

// Last returns the most recent frame.
func (s *Stats) Last() Frame {
	return s.last
}

// Overlay returns the lines an on-screen overlay should show. Empty until the first report.
func (s *Stats) Overlay() []string {
	if s.lastFpsText == "" {
		return nil
	}
	return []string{s.lastFpsText, s.lastMemText}
}
