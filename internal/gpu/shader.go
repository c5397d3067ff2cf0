package gpu

import "github.com/pkg/errors"

// Program is a linked vertex+fragment pair.
type Program struct {
	ID                           uint32
	VertexShader, FragmentShader uint32
}

// Delete releases the program and both shaders.
func (p *Program) Delete(dev Device) {
	dev.DetachShader(p.ID, p.VertexShader)
	dev.DetachShader(p.ID, p.FragmentShader)
	dev.DeleteProgram(p.ID)
	dev.DeleteShader(p.VertexShader)
	dev.DeleteShader(p.FragmentShader)
}

// Compile creates and compiles a shader of kind from source. On failure the shader
// object is released and a *CompileError holding the backend log is returned.
func Compile(dev Device, kind ShaderKind, source string) (uint32, error) {
	shader := dev.CreateShader(kind)
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)

	if !dev.ShaderCompiled(shader) {
		log := dev.ShaderInfoLog(shader)
		dev.DeleteShader(shader)
		return 0, &CompileError{Kind: kind, Log: log}
	}
	return shader, nil
}

// Link attaches both shaders to a new program and links it. On failure the program
// object is released and a *LinkError holding the backend log is returned; the shaders
// stay owned by the caller.
func Link(dev Device, vertexShader, fragmentShader uint32) (*Program, error) {
	p := &Program{
		ID:             dev.CreateProgram(),
		VertexShader:   vertexShader,
		FragmentShader: fragmentShader,
	}
	dev.AttachShader(p.ID, vertexShader)
	dev.AttachShader(p.ID, fragmentShader)
	dev.LinkProgram(p.ID)

	if !dev.ProgramLinked(p.ID) {
		log := dev.ProgramInfoLog(p.ID)
		dev.DetachShader(p.ID, vertexShader)
		dev.DetachShader(p.ID, fragmentShader)
		dev.DeleteProgram(p.ID)
		return nil, &LinkError{Log: log}
	}
	return p, nil
}

// LoadProgram compiles both sources and links them. Every object created on the way
// is released if a later step fails.
func LoadProgram(dev Device, vertexSource, fragmentSource string) (*Program, error) {
	vs, err := Compile(dev, VertexShader, vertexSource)
	if err != nil {
		return nil, err
	}
	fs, err := Compile(dev, FragmentShader, fragmentSource)
	if err != nil {
		dev.DeleteShader(vs)
		return nil, err
	}
	p, err := Link(dev, vs, fs)
	if err != nil {
		dev.DeleteShader(vs)
		dev.DeleteShader(fs)
		return nil, err
	}
	return p, nil
}

// Bindings names the shader inputs the draw pipeline feeds.
type Bindings struct {
	Position string
	Color    string
	MVP      string
}

// DefaultBindings matches the embedded pyramid shaders.
var DefaultBindings = Bindings{
	Position: "aPosition",
	Color:    "aColor",
	MVP:      "uModelViewProjectionMatrix",
}

// Locations are resolved slots of a Bindings in one program.
type Locations struct {
	Position uint32
	Color    uint32
	MVP      int32
}

// Locate resolves b in p. The first name that is not active yields a *LocationError.
func (p *Program) Locate(dev Device, b Bindings) (Locations, error) {
	var loc Locations

	pos := dev.AttribLocation(p.ID, b.Position)
	if pos < 0 {
		return loc, errors.WithStack(&LocationError{Kind: "attribute", Name: b.Position})
	}
	color := dev.AttribLocation(p.ID, b.Color)
	if color < 0 {
		return loc, errors.WithStack(&LocationError{Kind: "attribute", Name: b.Color})
	}
	mvp := dev.UniformLocation(p.ID, b.MVP)
	if mvp < 0 {
		return loc, errors.WithStack(&LocationError{Kind: "uniform", Name: b.MVP})
	}

	loc.Position = uint32(pos)
	loc.Color = uint32(color)
	loc.MVP = mvp
	return loc, nil
}
