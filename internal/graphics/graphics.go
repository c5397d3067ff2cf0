package graphics

import (
	"context"
	"sync"
	"sync/atomic"
)

// Host is a window with a graphics context current on the calling thread.
// EndFrame presents the frame and blocks until the host's frame pacing
// (vsync or target FPS) allows the next one.
type Host interface {
	ShouldClose() bool
	BeginFrame()
	EndFrame()
	FramebufferSize() (width, height int)
	Close()
}

// State of a Loop.
type State int32

const (
	Idle State = iota
	Rendering
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Rendering:
		return "rendering"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Loop drives a frame function once per host frame until the window closes, the
// context is cancelled, or Stop is called. Every frame runs to completion on the
// goroutine that called Run.
type Loop struct {
	host  Host
	frame func(width, height int)

	state    atomic.Int32
	stop     chan struct{}
	stopOnce sync.Once
}

// NewLoop returns an idle loop.
func NewLoop(host Host, frame func(width, height int)) *Loop {
	return &Loop{host: host, frame: frame, stop: make(chan struct{})}
}

// State reports where the loop is.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Stop asks the loop to return after the frame in progress. Safe to call from any
// goroutine and more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Run renders frames until one of the exit conditions holds. It returns ctx.Err()
// when the context ended the loop and nil otherwise. A loop runs only once.
func (l *Loop) Run(ctx context.Context) error {
	if !l.state.CompareAndSwap(int32(Idle), int32(Rendering)) {
		return nil
	}
	defer l.state.Store(int32(Stopped))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		default:
		}
		if l.host.ShouldClose() {
			return nil
		}

		l.host.BeginFrame()
		l.frame(l.host.FramebufferSize())
		l.host.EndFrame()
	}
}
