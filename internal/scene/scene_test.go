package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"pyramids/internal/debug"
	"pyramids/internal/gpu"
	"pyramids/internal/gpu/gputest"
	"pyramids/internal/logger"
	"pyramids/internal/primitives"
	"pyramids/internal/shaders"
	"pyramids/internal/transform"
)

func newScene(t *testing.T) (*Scene, *gputest.Device) {
	t.Helper()
	vs, err := shaders.Lookup(shaders.PyramidVertex)
	if err != nil {
		t.Fatal(err)
	}
	fs, err := shaders.Lookup(shaders.PyramidFragment)
	if err != nil {
		t.Fatal(err)
	}
	dev := gputest.NewDevice()
	geom := primitives.Pyramid()
	r, err := gpu.NewRenderer(dev, logger.New(logger.Options{}), gpu.Sources{Vertex: vs, Fragment: fs}, geom)
	if err != nil {
		t.Fatal(err)
	}
	return New(r, geom.TriangleCount()), dev
}

func TestDrawSubmitsThreePyramids(t *testing.T) {
	s, dev := newScene(t)
	f := s.Draw(1280, 720)

	if f != (debug.Frame{Draws: 3, Triangles: 12}) {
		t.Fatalf("frame = %+v", f)
	}
	if len(dev.Draws) != 3 {
		t.Fatalf("%d draws, want 3", len(dev.Draws))
	}
	projection := transform.Projection(1280, 720)
	for i, d := range dev.Draws {
		if d.Count != 12 || d.Count/3 != 4 {
			t.Errorf("draw %d covers %d vertices", i, d.Count)
		}
		want := transform.ModelViewProjection(Pyramids[i], projection)
		if !d.MVP.ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("draw %d matrix = %v, want %v", i, d.MVP, want)
		}
	}
	if len(dev.Clears) != 1 {
		t.Errorf("%d clears per frame", len(dev.Clears))
	}
}

func TestDrawInstanceMatricesDiffer(t *testing.T) {
	s, dev := newScene(t)
	s.Draw(800, 600)
	if dev.Draws[0].MVP == dev.Draws[1].MVP || dev.Draws[1].MVP == dev.Draws[2].MVP {
		t.Fatal("instances share a matrix")
	}
}

func TestProjectionFollowsSurface(t *testing.T) {
	s, dev := newScene(t)
	s.Draw(1600, 800)
	wide := dev.Draws[0].MVP
	dev.Reset()
	s.Draw(800, 800)
	square := dev.Draws[0].MVP

	if wide.ApproxEqualThreshold(square, 1e-5) {
		t.Fatal("projection did not change with the surface size")
	}
	if dev.ViewportSize != [2]int{800, 800} {
		t.Errorf("viewport = %v", dev.ViewportSize)
	}
}

// failing fails the draw at index fail and records the rest.
type failing struct {
	fail  int
	calls int
	drawn []mgl32.Mat4
}

func (f *failing) BeginFrame(int, int, [4]float32) {}

func (f *failing) Draw(mvp mgl32.Mat4) error {
	defer func() { f.calls++ }()
	if f.calls == f.fail {
		return &gpu.LocationError{Kind: "uniform", Name: "uModelViewProjectionMatrix"}
	}
	f.drawn = append(f.drawn, mvp)
	return nil
}

func TestFailedInstanceDoesNotStopOthers(t *testing.T) {
	for fail := 0; fail < 3; fail++ {
		r := &failing{fail: fail}
		s := New(r, 4)
		f := s.Draw(640, 480)
		if f.Draws != 3 || f.Failed != 1 || f.Triangles != 8 {
			t.Errorf("fail=%d: frame = %+v", fail, f)
		}
		if len(r.drawn) != 2 {
			t.Errorf("fail=%d: %d instances drawn", fail, len(r.drawn))
		}
	}
}

func TestMissingUniformFailsEveryDrawWithoutPanicking(t *testing.T) {
	s, dev := newScene(t)
	delete(dev.Uniforms, "uModelViewProjectionMatrix")

	f := s.Draw(640, 480)
	if f.Failed != 3 || len(dev.Draws) != 0 {
		t.Fatalf("frame = %+v, draws = %d", f, len(dev.Draws))
	}
}

func TestZeroAreaSurface(t *testing.T) {
	s, dev := newScene(t)
	f := s.Draw(0, 0)
	if f.Draws != 0 || len(dev.Draws) != 0 {
		t.Fatalf("drew on a surface without area: %+v", f)
	}
	if len(dev.Clears) != 1 {
		t.Fatal("surface not cleared")
	}
}

func TestPyramidLiterals(t *testing.T) {
	want := []transform.Instance{
		{Position: mgl32.Vec3{0.75, 0.6, -5}, Scale: mgl32.Vec3{1.2, 0.6, 1}, RotationY: 0},
		{Position: mgl32.Vec3{0, 0, -3}, Scale: mgl32.Vec3{0.7, 0.5, 0.5}, RotationY: 30},
		{Position: mgl32.Vec3{1.9, 0, -6}, Scale: mgl32.Vec3{1.45, 0.7, 1.25}, RotationY: 60},
	}
	for i := range want {
		if Pyramids[i] != want[i] {
			t.Errorf("instance %d = %+v, want %+v", i, Pyramids[i], want[i])
		}
	}
}

func TestSceneOwnsInstances(t *testing.T) {
	s, _ := newScene(t)
	original := Pyramids[0]
	s.Instances[0].Position = mgl32.Vec3{9, 9, 9}
	if Pyramids[0] != original {
		t.Fatalf("editing the scene changed the package instances: %+v", Pyramids[0])
	}
}
