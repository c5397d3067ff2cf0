package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "engine.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if p != Default() {
		t.Fatalf("got %+v, want defaults", p)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	data := "host: glfw\nwidth: 640\nvsync: false\nclear_color: [0.1, 0.2, 0.3, 1]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Host != HostGLFW || p.Width != 640 || p.VSync {
		t.Errorf("file values not applied: %+v", p)
	}
	if p.Height != Default().Height || p.Title != Default().Title {
		t.Errorf("defaults lost: %+v", p)
	}
	if p.ClearColor != [4]float32{0.1, 0.2, 0.3, 1} {
		t.Errorf("clear color = %v", p.ClearColor)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"syntax": "host: [raylib\n",
		"host":   "host: vulkan\n",
		"size":   "width: 0\n",
	}
	for name, data := range cases {
		path := filepath.Join(dir, name+".yaml")
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		p, err := Load(path)
		if err == nil {
			t.Errorf("%s: expected error", name)
		}
		if p != Default() {
			t.Errorf("%s: expected defaults on error, got %+v", name, p)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "engine.yaml")
	want := Default()
	want.Host = HostGLFW
	want.ShowStats = true
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PYRAMIDS_HOST", "GLFW")
	t.Setenv("PYRAMIDS_WIDTH", "320")
	t.Setenv("PYRAMIDS_HEIGHT", "")
	t.Setenv("PYRAMIDS_LOG_LEVEL", "debug")
	t.Setenv("PYRAMIDS_SHOW_STATS", "true")

	p, err := ApplyEnv(Default())
	if err != nil {
		t.Fatal(err)
	}
	if p.Host != HostGLFW || p.Width != 320 || p.LogLevel != "debug" || !p.ShowStats {
		t.Errorf("overrides not applied: %+v", p)
	}
	if p.Height != Default().Height {
		t.Errorf("empty variable changed height to %d", p.Height)
	}
}

func TestApplyEnvRejectsBadNumber(t *testing.T) {
	t.Setenv("PYRAMIDS_WIDTH", "wide")
	if _, err := ApplyEnv(Default()); err == nil {
		t.Fatal("expected error")
	}
}
