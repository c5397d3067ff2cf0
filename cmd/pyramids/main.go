package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/pkg/errors"

	"pyramids/internal/commands"
	"pyramids/internal/debug"
	"pyramids/internal/engineconfig"
	"pyramids/internal/env"
	"pyramids/internal/gpu"
	"pyramids/internal/graphics"
	"pyramids/internal/logger"
	"pyramids/internal/opengl"
	"pyramids/internal/primitives"
	"pyramids/internal/scene"
	"pyramids/internal/shaders"
	"pyramids/internal/window"
)

func init() {
	// GL and window calls must all come from the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "warning: .env:", err)
	}

	reg := commands.NewRegistry("run")

	runFS := flag.NewFlagSet("run", flag.ExitOnError)
	runConfig := runFS.String("config", engineconfig.EngineConfigPath, "config file")
	host := runFS.String("host", "", "window host: raylib or glfw (overrides config; glfw needs -tags glfwhost)")
	reg.Register("run", "open a window and render the pyramids", runFS, func() error {
		return run(*runConfig, *host)
	})

	cfgFS := flag.NewFlagSet("config", flag.ExitOnError)
	cfgConfig := cfgFS.String("config", engineconfig.EngineConfigPath, "config file")
	write := cfgFS.Bool("write", false, "write the effective configuration to -config")
	reg.Register("config", "print the effective configuration", cfgFS, func() error {
		return printConfig(*cfgConfig, *write)
	})

	if len(os.Args) > 1 && (os.Args[1] == "help" || os.Args[1] == "-h" || os.Args[1] == "--help") {
		reg.Usage(os.Stdout)
		return
	}
	if err := reg.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadPrefs reads the config file and environment. Problems are returned as warnings
// next to usable preferences.
func loadPrefs(path, host string) (engineconfig.EnginePrefs, []error) {
	var warnings []error
	prefs, err := engineconfig.Load(path)
	if err != nil {
		warnings = append(warnings, err)
	}
	if withEnv, err := engineconfig.ApplyEnv(prefs); err != nil {
		warnings = append(warnings, errors.Wrap(err, "environment ignored"))
	} else {
		prefs = withEnv
	}
	if host != "" {
		withHost := prefs
		withHost.Host = host
		if err := withHost.Validate(); err != nil {
			warnings = append(warnings, errors.Wrap(err, "-host ignored"))
		} else {
			prefs = withHost
		}
	}
	return prefs, warnings
}

func printConfig(path string, write bool) error {
	prefs, warnings := loadPrefs(path, "")
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	if write {
		if err := engineconfig.Save(path, prefs); err != nil {
			return err
		}
		fmt.Println("wrote", path)
		return nil
	}
	data, err := engineconfig.Marshal(prefs)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func run(configPath, hostOverride string) error {
	prefs, warnings := loadPrefs(configPath, hostOverride)

	level, levelErr := logger.ParseLevel(prefs.LogLevel)
	log := logger.New(logger.Options{Path: prefs.LogFile, Level: level, Console: os.Stderr})
	if levelErr != nil {
		log.Warn("Unknown log level, using info", "level", prefs.LogLevel)
	}
	for _, w := range warnings {
		log.Warn("Configuration problem", "err", w)
	}

	host, err := window.Open(prefs, log)
	if err != nil {
		log.Error("Unable to initialize the graphics context", "host", prefs.Host, "err", err)
		return err
	}
	defer host.Close()

	dev, err := opengl.New()
	if err != nil {
		log.Error("Unable to initialize OpenGL", "err", err)
		return err
	}
	defer dev.Release()
	log.Info("Graphics context initialized", "host", prefs.Host, "version", dev.Version())

	vertex, err := shaders.Lookup(shaders.PyramidVertex)
	if err != nil {
		return err
	}
	fragment, err := shaders.Lookup(shaders.PyramidFragment)
	if err != nil {
		return err
	}
	geom, err := primitives.NewRegistry().Get("pyramid")
	if err != nil {
		return err
	}

	renderer, err := gpu.NewRenderer(dev, log, gpu.Sources{Vertex: vertex, Fragment: fragment}, geom)
	if err != nil {
		log.Error("Failed to create shader program")
		return err
	}
	defer renderer.Close()

	scn := scene.New(renderer, geom.TriangleCount())
	scn.ClearColor = prefs.ClearColor

	stats := debug.New(log, prefs.StatsInterval)
	if o, ok := host.(window.Overlay); ok && prefs.ShowStats {
		o.SetOverlay(stats.Overlay)
	}

	loop := graphics.NewLoop(host, func(width, height int) {
		stats.Observe(scn.Draw(width, height))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = loop.Run(ctx)
	t := stats.Totals()
	log.Info("Render loop stopped", "frames", t.Frames, "draws", t.Draws, "failed", t.Failed)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
