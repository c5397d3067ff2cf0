package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"pyramids/internal/debug"
	"pyramids/internal/transform"
)

// Pyramids are the three fixed instances drawn every frame.
var Pyramids = [...]transform.Instance{
	{Position: mgl32.Vec3{0.75, 0.6, -5.0}, Scale: mgl32.Vec3{1.2, 0.6, 1.0}, RotationY: 0},
	{Position: mgl32.Vec3{0.0, 0.0, -3.0}, Scale: mgl32.Vec3{0.7, 0.5, 0.5}, RotationY: 30},
	{Position: mgl32.Vec3{1.9, 0.0, -6.0}, Scale: mgl32.Vec3{1.45, 0.7, 1.25}, RotationY: 60},
}

// Renderer is the part of gpu.Renderer the scene drives.
type Renderer interface {
	BeginFrame(width, height int, clear [4]float32)
	Draw(mvp mgl32.Mat4) error
}

// Scene draws a fixed set of mesh instances with one renderer.
type Scene struct {
	Instances  []transform.Instance
	ClearColor [4]float32

	renderer  Renderer
	triangles int
}

// New returns a scene drawing the three pyramids with r. trianglesPerDraw is the
// triangle count of the mesh r submits, used for frame statistics.
func New(r Renderer, trianglesPerDraw int) *Scene {
	return &Scene{
		Instances:  append([]transform.Instance(nil), Pyramids[:]...),
		ClearColor: [4]float32{0, 0, 0, 1},
		renderer:   r,
		triangles:  trianglesPerDraw,
	}
}

// Draw renders one frame on a surface of the given pixel size: clear, rebuild the
// projection from the current aspect ratio, then draw every instance. A failed
// instance is counted and does not stop the others. A surface without area is
// cleared but nothing is drawn.
func (s *Scene) Draw(width, height int) debug.Frame {
	var f debug.Frame

	s.renderer.BeginFrame(width, height, s.ClearColor)
	if width <= 0 || height <= 0 {
		return f
	}

	projection := transform.Projection(width, height)
	for _, in := range s.Instances {
		f.Draws++
		if err := s.renderer.Draw(transform.ModelViewProjection(in, projection)); err != nil {
			f.Failed++
			continue
		}
		f.Triangles += s.triangles
	}
	return f
}
