// Package opengl implements gpu.Device on an OpenGL 3.3 core context.
package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"pyramids/internal/gpu"
)

const floatSize = 4

// Device issues GL calls on the context current on the calling thread. A core
// context needs a bound vertex array object for attribute state, so the device
// owns one and rebinds it with every program switch (the host may rebind its own
// between frames).
type Device struct {
	vao uint32
}

var _ gpu.Device = (*Device)(nil)

// New loads the GL entry points of the current context.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrapf(gpu.ErrContextUnavailable, "gl init: %v", err)
	}
	d := &Device{}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	return d, nil
}

// Version is the GL_VERSION string of the context.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Release deletes the vertex array object.
func (d *Device) Release() {
	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &d.vao)
}

func shaderType(kind gpu.ShaderKind) uint32 {
	if kind == gpu.FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (d *Device) CreateShader(kind gpu.ShaderKind) uint32 {
	return gl.CreateShader(shaderType(kind))
}

func (d *Device) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
}

func (d *Device) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(shader uint32) string {
	var logSize int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logSize)
	if logSize == 0 {
		return ""
	}
	buf := make([]uint8, logSize+1)
	gl.GetShaderInfoLog(shader, int32(len(buf)), &logSize, &buf[0])
	return string(buf[:logSize])
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (d *Device) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(program uint32) string {
	var logSize int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logSize)
	if logSize == 0 {
		return ""
	}
	buf := make([]uint8, logSize+1)
	gl.GetProgramInfoLog(program, int32(len(buf)), &logSize, &buf[0])
	return string(buf[:logSize])
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UseProgram(program uint32) {
	gl.BindVertexArray(d.vao)
	gl.UseProgram(program)
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) CreateBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (d *Device) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

func (d *Device) StaticBufferData(data []float32) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *Device) FloatAttribPointer(index uint32, size int32) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, 0, 0)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Device) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// DefaultRasterState turns off face culling, blending and depth testing, which a
// host may have enabled while creating the context.
func (d *Device) DefaultRasterState() {
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
}

func (d *Device) Clear(color [4]float32) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
