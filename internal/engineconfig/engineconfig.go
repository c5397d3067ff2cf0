package engineconfig

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"pyramids/internal/env"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.yaml"

// Window hosts understood by the graphics package.
const (
	HostRaylib = "raylib"
	HostGLFW   = "glfw"
)

// EnginePrefs holds window, pacing and diagnostics preferences. Scene contents and the
// projection parameters are fixed in code and not configurable.
type EnginePrefs struct {
	Host          string     `yaml:"host"`
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	Title         string     `yaml:"title"`
	Fullscreen    bool       `yaml:"fullscreen"`
	VSync         bool       `yaml:"vsync"`
	TargetFPS     int        `yaml:"target_fps"`
	ClearColor    [4]float32 `yaml:"clear_color,flow"`
	LogLevel      string     `yaml:"log_level"`
	LogFile       string     `yaml:"log_file"`
	ShowStats     bool       `yaml:"show_stats"`
	StatsInterval int        `yaml:"stats_interval"`
}

// Default returns default preferences: a 1280x720 raylib window, vsync on, black background.
func Default() EnginePrefs {
	return EnginePrefs{
		Host:          HostRaylib,
		Width:         1280,
		Height:        720,
		Title:         "pyramids",
		VSync:         true,
		TargetFPS:     60,
		ClearColor:    [4]float32{0, 0, 0, 1},
		LogLevel:      "info",
		LogFile:       "logs/pyramids.txt",
		StatsInterval: 300,
	}
}

// Load reads preferences from path over Default(). A missing file is not an error and
// yields Default(). A file that cannot be parsed or fails Validate returns Default()
// together with the error so the caller can report it and keep going.
func Load(path string) (EnginePrefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), errors.Wrapf(err, "parse %s", path)
	}
	if err := p.Validate(); err != nil {
		return Default(), errors.Wrapf(err, "invalid %s", path)
	}
	return p, nil
}

// Save writes preferences to path as YAML, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write config")
}

// Marshal encodes preferences in the config file format.
func Marshal(p EnginePrefs) ([]byte, error) {
	data, err := yaml.Marshal(p)
	return data, errors.Wrap(err, "encode config")
}

// Validate reports the first unusable field.
func (p EnginePrefs) Validate() error {
	switch p.Host {
	case HostRaylib, HostGLFW:
	default:
		return errors.Errorf("unknown host %q (want %s or %s)", p.Host, HostRaylib, HostGLFW)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", p.Width, p.Height)
	}
	if p.TargetFPS < 0 {
		return errors.Errorf("target_fps %d must not be negative", p.TargetFPS)
	}
	if p.StatsInterval <= 0 {
		return errors.Errorf("stats_interval %d must be positive", p.StatsInterval)
	}
	return nil
}

// envOverrides mirrors the subset of EnginePrefs that PYRAMIDS_* variables can set.
// Zero fields are left alone when merged.
type envOverrides struct {
	Host     string
	Width    int
	Height   int
	LogLevel string
}

// ApplyEnv overlays PYRAMIDS_HOST, PYRAMIDS_WIDTH, PYRAMIDS_HEIGHT, PYRAMIDS_LOG_LEVEL and
// PYRAMIDS_SHOW_STATS onto p. Unset variables keep the current value.
func ApplyEnv(p EnginePrefs) (EnginePrefs, error) {
	var o envOverrides
	if v, ok := env.Lookup("PYRAMIDS_HOST"); ok {
		o.Host = strings.ToLower(v)
	}
	if v, ok := env.Lookup("PYRAMIDS_WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, errors.Wrap(err, "PYRAMIDS_WIDTH")
		}
		o.Width = n
	}
	if v, ok := env.Lookup("PYRAMIDS_HEIGHT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, errors.Wrap(err, "PYRAMIDS_HEIGHT")
		}
		o.Height = n
	}
	if v, ok := env.Lookup("PYRAMIDS_LOG_LEVEL"); ok {
		o.LogLevel = v
	}

	out := p
	if err := copier.CopyWithOption(&out, &o, copier.Option{IgnoreEmpty: true}); err != nil {
		return p, errors.Wrap(err, "apply environment")
	}
	if v, ok := env.Lookup("PYRAMIDS_SHOW_STATS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return p, errors.Wrap(err, "PYRAMIDS_SHOW_STATS")
		}
		out.ShowStats = b
	}
	return out, out.Validate()
}
