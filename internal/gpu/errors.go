package gpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrContextUnavailable is returned when no usable graphics context could be created.
var ErrContextUnavailable = errors.New("graphics context unavailable")

// CompileError carries the backend diagnostic of a rejected shader.
type CompileError struct {
	Kind ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %q", e.Kind, e.Log)
}

// LinkError carries the backend diagnostic of a rejected program.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %q", e.Log)
}

// LocationError reports an attribute or uniform name that is not active in the program.
type LocationError struct {
	Kind string // "attribute" or "uniform"
	Name string
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("%s %q not found in program", e.Kind, e.Name)
}
