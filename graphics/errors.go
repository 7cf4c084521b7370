package graphics

import (
	"fmt"
	"strings"
)

// SetupError reports a failure that leaves nothing to render with: a GPU
// object that could not be allocated, a shader file that could not be read,
// a window that could not be opened. Callers treat it as fatal.
type SetupError struct {
	Op  string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// Stage names the step of a program build that produced a Diagnostic.
type Stage string

const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
	StageLink     Stage = "link"
)

// Diagnostic is a compiler or linker log captured during a program build.
type Diagnostic struct {
	Stage Stage
	Log   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Stage, strings.TrimRight(d.Log, "\x00\n "))
}

// BuildError is returned by ShaderProgram.Err when compiling or linking
// failed. The program is still usable as a handle but renders nothing
// meaningful.
type BuildError struct {
	Diagnostics []Diagnostic
}

func (e *BuildError) Error() string {
	parts := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		parts[i] = d.String()
	}
	return "shader build failed: " + strings.Join(parts, "; ")
}
