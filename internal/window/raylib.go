//go:build !glfwhost

package window

import (
	"context"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"pyramids/internal/engineconfig"
	"pyramids/internal/gpu"
	"pyramids/internal/graphics"
	"pyramids/internal/logger"
)

// Builtin is the host compiled into this binary.
const Builtin = engineconfig.HostRaylib

func openBuiltin(p engineconfig.EnginePrefs, log *logger.Logger) (graphics.Host, error) {
	return NewRaylib(p, log)
}

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
)

// Raylib is a host backed by a raylib window. raylib's own trace output is routed
// into the renderer log.
type Raylib struct {
	overlay func() []string
}

// NewRaylib opens the window described by p. With Fullscreen the window takes the
// size of the primary monitor.
func NewRaylib(p engineconfig.EnginePrefs, log *logger.Logger) (*Raylib, error) {
	rl.SetTraceLogCallback(func(level int, text string) {
		log.Log(context.Background(), traceLevel(rl.TraceLogLevel(level)), text, "source", "raylib")
	})

	var flags uint32
	if p.VSync {
		flags |= rl.FlagVsyncHint
	}
	if p.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)

	width, height := int32(p.Width), int32(p.Height)
	if p.Fullscreen {
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(width, height, p.Title)
	if !rl.IsWindowReady() {
		return nil, errors.Wrap(gpu.ErrContextUnavailable, "raylib window")
	}
	if p.TargetFPS > 0 {
		rl.SetTargetFPS(int32(p.TargetFPS))
	}
	return &Raylib{}, nil
}

func traceLevel(level rl.TraceLogLevel) slog.Level {
	switch {
	case level >= rl.LogError:
		return slog.LevelError
	case level == rl.LogWarning:
		return slog.LevelWarn
	case level == rl.LogInfo:
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// SetOverlay sets a source of text lines drawn at the top-right in green every frame.
func (r *Raylib) SetOverlay(lines func() []string) {
	r.overlay = lines
}

func (r *Raylib) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (r *Raylib) BeginFrame() {
	rl.BeginDrawing()
}

// EndFrame draws the overlay, presents the frame and waits for the target FPS.
func (r *Raylib) EndFrame() {
	if r.overlay != nil {
		screenW := int32(rl.GetScreenWidth())
		y := int32(overlayPadding)
		for _, text := range r.overlay() {
			w := rl.MeasureText(text, overlayFontSize)
			rl.DrawText(text, screenW-w-overlayPadding, y, overlayFontSize, rl.Green)
			y += overlayLineHeight
		}
	}
	rl.EndDrawing()
}

// FramebufferSize is the render size in pixels, which differs from the screen size on HiDPI displays.
func (r *Raylib) FramebufferSize() (int, int) {
	return rl.GetRenderWidth(), rl.GetRenderHeight()
}

func (r *Raylib) Close() {
	rl.CloseWindow()
}
