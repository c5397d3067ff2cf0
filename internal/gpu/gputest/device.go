// Package gputest provides an in-memory gpu.Device that records what the pipeline
// asks of it.
package gputest

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"pyramids/internal/gpu"
)

// Attrib is the layout of one enabled vertex attribute at draw time.
type Attrib struct {
	Buffer uint32
	Size   int32
}

// Draw is one recorded triangle submission.
type Draw struct {
	Program uint32
	First   int32
	Count   int32
	MVP     mgl32.Mat4
	Attribs map[uint32]Attrib
}

type shader struct {
	kind     gpu.ShaderKind
	source   string
	compiled bool
	log      string
}

type program struct {
	shaders []uint32
	linked  bool
	log     string
}

// Device is a fake gpu.Device. Compile, Link, Attribs and Uniforms decide how the
// fake backend behaves and may be changed between calls.
type Device struct {
	// Compile returns the info log and whether source compiles. Default: source must contain "void main".
	Compile func(kind gpu.ShaderKind, source string) (log string, ok bool)
	// Link returns the info log and whether the pair links. Default: both shaders compiled.
	Link func(vertex, fragment string) (log string, ok bool)
	// Attribs and Uniforms are the active names of every linked program.
	Attribs  map[string]int32
	Uniforms map[string]int32

	Draws        []Draw
	Clears       [][4]float32
	ViewportSize [2]int
	Uploads      int
	// Frame lists the frame setup calls in order: "raster", "viewport", "clear".
	Frame        []string

	next     uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
	buffers  map[uint32][]float32
	bound    uint32
	current  uint32
	pointers map[uint32]Attrib
	enabled  map[uint32]bool
	matrices map[int32]mgl32.Mat4
}

var _ gpu.Device = (*Device)(nil)

// NewDevice returns a fake whose programs expose aPosition, aColor and uModelViewProjectionMatrix.
func NewDevice() *Device {
	return &Device{
		Compile: func(kind gpu.ShaderKind, source string) (string, bool) {
			if strings.Contains(source, "void main") {
				return "", true
			}
			return "ERROR: 0:1: '' : syntax error", false
		},
		Attribs:  map[string]int32{"aPosition": 0, "aColor": 1},
		Uniforms: map[string]int32{"uModelViewProjectionMatrix": 0},
		shaders:  map[uint32]*shader{},
		programs: map[uint32]*program{},
		buffers:  map[uint32][]float32{},
		pointers: map[uint32]Attrib{},
		enabled:  map[uint32]bool{},
		matrices: map[int32]mgl32.Mat4{},
	}
}

func (d *Device) id() uint32 {
	d.next++
	return d.next
}

func (d *Device) CreateShader(kind gpu.ShaderKind) uint32 {
	id := d.id()
	d.shaders[id] = &shader{kind: kind}
	return id
}

func (d *Device) ShaderSource(id uint32, source string) {
	if s, ok := d.shaders[id]; ok {
		s.source = source
	}
}

func (d *Device) CompileShader(id uint32) {
	s, ok := d.shaders[id]
	if !ok {
		return
	}
	s.log, s.compiled = d.Compile(s.kind, s.source)
}

func (d *Device) ShaderCompiled(id uint32) bool {
	s, ok := d.shaders[id]
	return ok && s.compiled
}

func (d *Device) ShaderInfoLog(id uint32) string {
	if s, ok := d.shaders[id]; ok {
		return s.log
	}
	return ""
}

func (d *Device) DeleteShader(id uint32) { delete(d.shaders, id) }

func (d *Device) CreateProgram() uint32 {
	id := d.id()
	d.programs[id] = &program{}
	return id
}

func (d *Device) AttachShader(p, s uint32) {
	if prog, ok := d.programs[p]; ok {
		prog.shaders = append(prog.shaders, s)
	}
}

func (d *Device) DetachShader(p, s uint32) {
	prog, ok := d.programs[p]
	if !ok {
		return
	}
	for i, id := range prog.shaders {
		if id == s {
			prog.shaders = append(prog.shaders[:i], prog.shaders[i+1:]...)
			return
		}
	}
}

func (d *Device) LinkProgram(p uint32) {
	prog, ok := d.programs[p]
	if !ok {
		return
	}
	var vertex, fragment *shader
	for _, id := range prog.shaders {
		s, ok := d.shaders[id]
		if !ok || !s.compiled {
			prog.linked, prog.log = false, "ERROR: attached shader not compiled"
			return
		}
		switch s.kind {
		case gpu.VertexShader:
			vertex = s
		case gpu.FragmentShader:
			fragment = s
		}
	}
	if vertex == nil || fragment == nil {
		prog.linked, prog.log = false, "ERROR: missing shader stage"
		return
	}
	prog.linked, prog.log = true, ""
	if d.Link != nil {
		prog.log, prog.linked = d.Link(vertex.source, fragment.source)
	}
}

func (d *Device) ProgramLinked(p uint32) bool {
	prog, ok := d.programs[p]
	return ok && prog.linked
}

func (d *Device) ProgramInfoLog(p uint32) string {
	if prog, ok := d.programs[p]; ok {
		return prog.log
	}
	return ""
}

func (d *Device) DeleteProgram(p uint32) { delete(d.programs, p) }

func (d *Device) UseProgram(p uint32) { d.current = p }

func (d *Device) AttribLocation(p uint32, name string) int32 {
	if !d.ProgramLinked(p) {
		return -1
	}
	if loc, ok := d.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) UniformLocation(p uint32, name string) int32 {
	if !d.ProgramLinked(p) {
		return -1
	}
	if loc, ok := d.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) CreateBuffer() uint32 {
	id := d.id()
	d.buffers[id] = nil
	return id
}

func (d *Device) BindArrayBuffer(id uint32) { d.bound = id }

func (d *Device) StaticBufferData(data []float32) {
	d.buffers[d.bound] = append([]float32(nil), data...)
	d.Uploads++
}

func (d *Device) DeleteBuffer(id uint32) { delete(d.buffers, id) }

func (d *Device) FloatAttribPointer(index uint32, size int32) {
	d.pointers[index] = Attrib{Buffer: d.bound, Size: size}
}

func (d *Device) EnableVertexAttribArray(index uint32) { d.enabled[index] = true }

func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) { d.matrices[location] = m }

func (d *Device) DrawTriangles(first, count int32) {
	attribs := make(map[uint32]Attrib)
	for index := range d.enabled {
		attribs[index] = d.pointers[index]
	}
	d.Draws = append(d.Draws, Draw{
		Program: d.current,
		First:   first,
		Count:   count,
		MVP:     d.matrices[d.Uniforms["uModelViewProjectionMatrix"]],
		Attribs: attribs,
	})
}

func (d *Device) DefaultRasterState() { d.Frame = append(d.Frame, "raster") }

func (d *Device) Viewport(width, height int) {
	d.ViewportSize = [2]int{width, height}
	d.Frame = append(d.Frame, "viewport")
}

func (d *Device) Clear(color [4]float32) {
	d.Clears = append(d.Clears, color)
	d.Frame = append(d.Frame, "clear")
}

// Buffer returns the contents of a live buffer.
func (d *Device) Buffer(id uint32) ([]float32, bool) {
	data, ok := d.buffers[id]
	return data, ok
}

// Live counts shader, program and buffer objects that have not been deleted.
func (d *Device) Live() (shaders, programs, buffers int) {
	return len(d.shaders), len(d.programs), len(d.buffers)
}

// Reset forgets recorded draws, clears and frame setup calls.
func (d *Device) Reset() {
	d.Draws = nil
	d.Clears = nil
	d.Frame = nil
}
