//go:build glfwhost

package window

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"pyramids/internal/engineconfig"
	"pyramids/internal/gpu"
	"pyramids/internal/graphics"
	"pyramids/internal/logger"
)

// Builtin is the host compiled into this binary.
const Builtin = engineconfig.HostGLFW

func openBuiltin(p engineconfig.EnginePrefs, log *logger.Logger) (graphics.Host, error) {
	return NewGLFW(p, log)
}

// GLFW is a host backed by a GLFW window with an OpenGL 3.3 core context.
type GLFW struct {
	win   *glfw.Window
	frame time.Duration
	next  time.Time
}

// NewGLFW opens the window described by p. Without vsync, frames are paced in
// software to p.TargetFPS.
func NewGLFW(p engineconfig.EnginePrefs, log *logger.Logger) (*GLFW, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrapf(gpu.ErrContextUnavailable, "glfw init: %v", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	width, height := p.Width, p.Height
	var monitor *glfw.Monitor
	if p.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}

	win, err := glfw.CreateWindow(width, height, p.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrapf(gpu.ErrContextUnavailable, "glfw window: %v", err)
	}
	win.MakeContextCurrent()

	h := &GLFW{win: win}
	if p.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
		if p.TargetFPS > 0 {
			h.frame = time.Second / time.Duration(p.TargetFPS)
		}
	}
	log.Info("GLFW window created", "width", width, "height", height, "vsync", p.VSync)
	return h, nil
}

func (h *GLFW) ShouldClose() bool {
	return h.win.ShouldClose()
}

func (h *GLFW) BeginFrame() {
	glfw.PollEvents()
}

// EndFrame swaps buffers and, when pacing in software, sleeps until the next frame is due.
func (h *GLFW) EndFrame() {
	h.win.SwapBuffers()
	if h.frame == 0 {
		return
	}
	now := time.Now()
	if h.next.IsZero() || now.Sub(h.next) > h.frame {
		h.next = now
	}
	h.next = h.next.Add(h.frame)
	if wait := h.next.Sub(now); wait > 0 {
		time.Sleep(wait)
	}
}

func (h *GLFW) FramebufferSize() (int, int) {
	return h.win.GetFramebufferSize()
}

func (h *GLFW) Close() {
	h.win.Destroy()
	glfw.Terminate()
}
