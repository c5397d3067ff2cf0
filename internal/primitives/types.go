package primitives

import "github.com/pkg/errors"

// Floats per position vertex and per color vertex.
const (
	PositionSize = 3
	ColorSize    = 4
)

// RGBA is one entry of a color table.
type RGBA [4]float32

// Geometry is an immutable triangle list: flat xyz positions and one RGBA per vertex.
type Geometry struct {
	Name      string
	Positions []float32
	Colors    []float32
}

// VertexCount is the number of vertices described by Positions.
func (g Geometry) VertexCount() int {
	return len(g.Positions) / PositionSize
}

// TriangleCount is the number of whole triangles in the list.
func (g Geometry) TriangleCount() int {
	return g.VertexCount() / 3
}

// Validate checks that positions hold whole triangles and that colors, when present,
// cover every vertex.
func (g Geometry) Validate() error {
	if len(g.Positions) == 0 {
		return errors.Errorf("%s: no positions", g.Name)
	}
	if len(g.Positions)%(PositionSize*3) != 0 {
		return errors.Errorf("%s: %d position floats is not a whole number of triangles", g.Name, len(g.Positions))
	}
	if g.Colors != nil && len(g.Colors) != g.VertexCount()*ColorSize {
		return errors.Errorf("%s: %d color floats for %d vertices", g.Name, len(g.Colors), g.VertexCount())
	}
	return nil
}
