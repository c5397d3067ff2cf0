package gpu

import (
	"github.com/go-gl/mathgl/mgl32"

	"pyramids/internal/primitives"
)

// DrawInstance submits one draw of mesh with program p and the combined matrix mvp.
// Slots are resolved by name on every call; when one is missing nothing is bound or
// drawn and the *LocationError is returned.
func DrawInstance(dev Device, p *Program, b Bindings, mesh *Mesh, mvp mgl32.Mat4) error {
	dev.UseProgram(p.ID)

	loc, err := p.Locate(dev, b)
	if err != nil {
		return err
	}

	dev.BindArrayBuffer(mesh.Positions.ID)
	dev.FloatAttribPointer(loc.Position, primitives.PositionSize)
	dev.EnableVertexAttribArray(loc.Position)

	if mesh.Colors.ID != 0 {
		dev.BindArrayBuffer(mesh.Colors.ID)
		dev.FloatAttribPointer(loc.Color, primitives.ColorSize)
		dev.EnableVertexAttribArray(loc.Color)
	}

	dev.UniformMatrix4(loc.MVP, mvp)
	dev.DrawTriangles(0, mesh.VertexCount)
	return nil
}
