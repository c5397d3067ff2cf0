package debug

import (
	"testing"
	"time"

	"pyramids/internal/logger"
)

func TestObserveAccumulates(t *testing.T) {
	log := logger.New(logger.Options{})
	s := New(log, 100)
	for i := 0; i < 5; i++ {
		s.Observe(Frame{Draws: 3, Failed: 1, Triangles: 8})
	}
	got := s.Totals()
	want := Totals{Frames: 5, Draws: 15, Failed: 5, Triangles: 40}
	if got != want {
		t.Fatalf("totals = %+v, want %+v", got, want)
	}
	if s.Last() != (Frame{Draws: 3, Failed: 1, Triangles: 8}) {
		t.Errorf("last = %+v", s.Last())
	}
	if len(log.Lines()) != 0 {
		t.Errorf("reported before interval: %q", log.Lines())
	}
	if s.Overlay() != nil {
		t.Error("overlay text before first report")
	}
}

func TestObserveReportsEveryInterval(t *testing.T) {
	log := logger.New(logger.Options{})
	s := New(log, 3)
	clock := time.Unix(0, 0)
	s.now = func() time.Time { return clock }

	for i := 0; i < 7; i++ {
		s.Observe(Frame{Draws: 3, Triangles: 12})
		clock = clock.Add(time.Second / 60)
	}
	if n := len(log.Lines()); n != 2 {
		t.Fatalf("%d reports, want 2: %q", n, log.Lines())
	}
	if !log.Contains("fps=60.0") {
		t.Errorf("fps not reported: %q", log.Lines())
	}
	lines := s.Overlay()
	if len(lines) != 2 || lines[0] != "FPS: 60  draws: 3/3" {
		t.Errorf("overlay = %q", lines)
	}
}

func TestNewClampsInterval(t *testing.T) {
	if s := New(logger.New(logger.Options{}), 0); s.Interval != 1 {
		t.Fatalf("interval = %d", s.Interval)
	}
}
