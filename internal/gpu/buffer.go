package gpu

import "pyramids/internal/primitives"

// Buffer is a static float array uploaded to device memory.
type Buffer struct {
	ID  uint32
	Len int
}

// Upload copies data into a new static array buffer.
func Upload(dev Device, data []float32) Buffer {
	id := dev.CreateBuffer()
	dev.BindArrayBuffer(id)
	dev.StaticBufferData(data)
	return Buffer{ID: id, Len: len(data)}
}

// Mesh is geometry resident on the device. Colors has ID 0 when the geometry has none.
type Mesh struct {
	Positions   Buffer
	Colors      Buffer
	VertexCount int32
}

// UploadMesh uploads the positions and, if present, the per-vertex colors of g once.
func UploadMesh(dev Device, g primitives.Geometry) (*Mesh, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	m := &Mesh{
		Positions:   Upload(dev, g.Positions),
		VertexCount: int32(g.VertexCount()),
	}
	if len(g.Colors) > 0 {
		m.Colors = Upload(dev, g.Colors)
	}
	return m, nil
}

// Delete releases the mesh buffers.
func (m *Mesh) Delete(dev Device) {
	dev.DeleteBuffer(m.Positions.ID)
	if m.Colors.ID != 0 {
		dev.DeleteBuffer(m.Colors.ID)
	}
}
