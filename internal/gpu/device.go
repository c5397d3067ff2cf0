// Package gpu is the rendering pipeline: shader compilation and linking, static
// buffer upload, and per-instance draw submission on top of a Device.
//
// All functions must be called from the thread that owns the graphics context.
package gpu

import "github.com/go-gl/mathgl/mgl32"

// ShaderKind selects the pipeline stage a shader is compiled for.
type ShaderKind uint8

const (
	VertexShader ShaderKind = iota + 1
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// Device is the subset of the graphics backend the pipeline uses. Handles are opaque
// non-zero integers; location lookups return -1 when the name is not active in the program.
type Device interface {
	CreateShader(kind ShaderKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32

	CreateBuffer() uint32
	BindArrayBuffer(buffer uint32)
	// StaticBufferData fills the bound array buffer; the contents are not expected to change.
	StaticBufferData(data []float32)
	DeleteBuffer(buffer uint32)
	// FloatAttribPointer describes the bound array buffer as size tightly packed,
	// non-normalized floats per vertex for attribute index.
	FloatAttribPointer(index uint32, size int32)
	EnableVertexAttribArray(index uint32)

	// UniformMatrix4 uploads m column-major without transposing.
	UniformMatrix4(location int32, m mgl32.Mat4)
	DrawTriangles(first, count int32)

	// DefaultRasterState restores GL's initial rasterizer state: no face culling,
	// no blending, no depth test.
	DefaultRasterState()
	Viewport(width, height int)
	Clear(color [4]float32)
}
