// Package window opens the native window and graphics context the renderer draws into.
//
// raylib-go and go-gl/glfw each compile their own copy of the GLFW C library, so only
// one host is linked into a binary: raylib by default, GLFW with -tags glfwhost.
package window

import (
	"github.com/pkg/errors"

	"pyramids/internal/engineconfig"
	"pyramids/internal/graphics"
	"pyramids/internal/logger"
)

// ErrHostNotBuilt is returned by Open for a known host that this binary was built without.
var ErrHostNotBuilt = errors.New("window host not built into this binary")

// Overlay is implemented by hosts that can draw text lines over each frame.
type Overlay interface {
	SetOverlay(lines func() []string)
}

// Open creates the host selected by p.Host. The returned host's context is current on
// the calling thread, which must stay locked to its OS thread.
func Open(p engineconfig.EnginePrefs, log *logger.Logger) (graphics.Host, error) {
	if p.Host == Builtin {
		return openBuiltin(p, log)
	}
	switch p.Host {
	case engineconfig.HostRaylib:
		return nil, errors.Wrapf(ErrHostNotBuilt, "%s (rebuild without -tags glfwhost)", p.Host)
	case engineconfig.HostGLFW:
		return nil, errors.Wrapf(ErrHostNotBuilt, "%s (rebuild with -tags glfwhost)", p.Host)
	}
	return nil, errors.Errorf("unknown host %q", p.Host)
}
