package primitives

import (
	"sort"

	"github.com/pkg/errors"
)

// pyramidPositions is a four-triangle pyramid: base, front, right and left faces.
var pyramidPositions = [...]float32{
	// base
	0.0, 0.0, 1.0,
	-1.0, 0.0, -1.0,
	1.0, 0.0, -1.0,

	// front
	0.0, 0.0, 1.0,
	1.0, 0.0, -1.0,
	0.0, 2.0, 0.0,

	// right
	0.0, 0.0, 1.0,
	0.0, 2.0, 0.0,
	-1.0, 0.0, -1.0,

	// left
	1.0, 0.0, -1.0,
	0.0, 2.0, 0.0,
	-1.0, 0.0, -1.0,
}

// ColorTable is red, green, blue. Vertex i of a mesh is colored ColorTable[i%3], so
// every triangle blends the three.
var ColorTable = [...]RGBA{
	{1.0, 0.0, 0.0, 1.0},
	{0.0, 1.0, 0.0, 1.0},
	{0.0, 0.0, 1.0, 1.0},
}

// Pyramid returns a fresh copy of the pyramid mesh with per-vertex colors.
func Pyramid() Geometry {
	positions := make([]float32, len(pyramidPositions))
	copy(positions, pyramidPositions[:])
	return Geometry{
		Name:      "pyramid",
		Positions: positions,
		Colors:    VertexColors(len(positions)/PositionSize, ColorTable[:]),
	}
}

// VertexColors expands table into a flat RGBA array of n vertices, cycling through table.
func VertexColors(n int, table []RGBA) []float32 {
	if len(table) == 0 {
		return nil
	}
	out := make([]float32, 0, n*ColorSize)
	for i := 0; i < n; i++ {
		c := table[i%len(table)]
		out = append(out, c[:]...)
	}
	return out
}

// Registry maps primitive names to geometry constructors.
type Registry struct {
	builders map[string]func() Geometry
}

// NewRegistry returns a registry holding the built-in primitives.
func NewRegistry() *Registry {
	return &Registry{builders: map[string]func() Geometry{
		"pyramid": Pyramid,
	}}
}

// Get builds and validates the named geometry.
func (r *Registry) Get(name string) (Geometry, error) {
	build, ok := r.builders[name]
	if !ok {
		return Geometry{}, errors.Errorf("unknown primitive %q", name)
	}
	g := build()
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// Names lists the registered primitives in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
