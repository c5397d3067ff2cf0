package gpu

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"pyramids/internal/logger"
	"pyramids/internal/primitives"
)

// Sources is the shader pair a Renderer is built from.
type Sources struct {
	Vertex   string
	Fragment string
}

// Renderer owns the device state of the scene: the linked program and the mesh,
// both created once and reused by every draw of every frame.
type Renderer struct {
	dev      Device
	log      *logger.Logger
	program  *Program
	mesh     *Mesh
	bindings Bindings

	// reported holds draw errors already logged; failed counts every failed draw.
	reported map[string]struct{}
	failed   int
}

// NewRenderer compiles and links src and uploads geom. Compile and link failures are
// logged with the backend diagnostic and returned; nothing is left allocated.
func NewRenderer(dev Device, log *logger.Logger, src Sources, geom primitives.Geometry) (*Renderer, error) {
	program, err := LoadProgram(dev, src.Vertex, src.Fragment)
	if err != nil {
		var ce *CompileError
		var le *LinkError
		switch {
		case errors.As(err, &ce):
			log.Error("Failed to compile shader", "kind", ce.Kind.String(), "log", ce.Log)
		case errors.As(err, &le):
			log.Error("Failed to link program", "log", le.Log)
		}
		return nil, err
	}
	log.Info("Shader program created", "program", program.ID)

	mesh, err := UploadMesh(dev, geom)
	if err != nil {
		program.Delete(dev)
		log.Error("Invalid geometry", "name", geom.Name, "err", err)
		return nil, errors.Wrap(err, "upload mesh")
	}
	log.Info("Geometry uploaded", "name", geom.Name, "vertices", mesh.VertexCount)

	return &Renderer{
		dev:      dev,
		log:      log,
		program:  program,
		mesh:     mesh,
		bindings: DefaultBindings,
		reported: map[string]struct{}{},
	}, nil
}

// SetBindings replaces the shader input names used by Draw. Failures under the new
// names are logged again.
func (r *Renderer) SetBindings(b Bindings) {
	r.bindings = b
	r.reported = map[string]struct{}{}
}

// Mesh returns the uploaded mesh.
func (r *Renderer) Mesh() *Mesh {
	return r.mesh
}

// Program returns the linked program.
func (r *Renderer) Program() *Program {
	return r.program
}

// BeginFrame restores the default raster state, sets the viewport to the surface
// size and clears color and depth.
func (r *Renderer) BeginFrame(width, height int, clear [4]float32) {
	r.dev.DefaultRasterState()
	r.dev.Viewport(width, height)
	r.dev.Clear(clear)
}

// Draw submits the mesh once with mvp. A failed draw is returned and leaves no partial
// bindings behind that would affect later draws. Each distinct failure is logged once.
func (r *Renderer) Draw(mvp mgl32.Mat4) error {
	if err := DrawInstance(r.dev, r.program, r.bindings, r.mesh, mvp); err != nil {
		r.failed++
		if _, seen := r.reported[err.Error()]; !seen {
			r.reported[err.Error()] = struct{}{}
			r.log.Error("Failed to get attribute or uniform locations", "err", err)
		}
		return err
	}
	return nil
}

// Close releases the mesh and the program.
func (r *Renderer) Close() {
	if r.failed > 0 {
		r.log.Warn("Draws failed", "count", r.failed)
	}
	r.mesh.Delete(r.dev)
	r.program.Delete(r.dev)
}
