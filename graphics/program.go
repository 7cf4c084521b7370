package graphics

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// infoLogSize bounds how much of a compiler or linker log is retrieved.
const infoLogSize = 512

// ShaderProgram owns a linked GL program.
//
// Compile and link failures do not stop construction: the logs are printed
// and kept in Diagnostics, and the handle is returned anyway. Binding a
// failed program draws nothing useful.
type ShaderProgram struct {
	gl          GL
	handle      uint32
	diagnostics []Diagnostic
}

// NewShaderProgramFromFiles reads both shader sources and builds a program
// from them. A file that cannot be read is a *SetupError.
func NewShaderProgramFromFiles(gl GL, vertexPath, fragmentPath string) (*ShaderProgram, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, &SetupError{Op: "read vertex shader", Err: err}
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, &SetupError{Op: "read fragment shader", Err: err}
	}
	return NewShaderProgram(gl, string(vs), string(fs))
}

// NewShaderProgram compiles, attaches and links the two sources. The
// intermediate shader objects are deleted whether or not linking succeeds.
func NewShaderProgram(gl GL, vertexSource, fragmentSource string) (*ShaderProgram, error) {
	return NewShaderProgramWithDiagnostics(gl, vertexSource, fragmentSource, nil)
}

// NewShaderProgramWithDiagnostics builds like NewShaderProgram but starts
// from diagnostics already produced while preparing the sources, such as
// failed translations. Err reports them along with any compile or link log.
func NewShaderProgramWithDiagnostics(gl GL, vertexSource, fragmentSource string, prior []Diagnostic) (*ShaderProgram, error) {
	p := &ShaderProgram{gl: gl}
	p.diagnostics = append(p.diagnostics, prior...)

	vertexShader, err := p.compileShader(vertexSource, VertexShader, StageVertex)
	if err != nil {
		return nil, err
	}
	fragmentShader, err := p.compileShader(fragmentSource, FragmentShader, StageFragment)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, err
	}

	p.handle = gl.CreateProgram()
	if p.handle == 0 {
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)
		return nil, &SetupError{Op: "create program", Err: errors.New("no program object available")}
	}
	gl.AttachShader(p.handle, vertexShader)
	gl.AttachShader(p.handle, fragmentShader)
	gl.LinkProgram(p.handle)

	if gl.GetProgrami(p.handle, LinkStatus) == False {
		p.report(StageLink, gl.GetProgramInfoLog(p.handle, infoLogSize))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return p, nil
}

func (p *ShaderProgram) compileShader(source string, shaderType uint32, stage Stage) (uint32, error) {
	shader := p.gl.CreateShader(shaderType)
	if shader == 0 {
		return 0, &SetupError{Op: fmt.Sprintf("create %s shader", stage), Err: errors.New("no shader object available")}
	}
	p.gl.ShaderSource(shader, source)
	p.gl.CompileShader(shader)

	if p.gl.GetShaderi(shader, CompileStatus) == False {
		p.report(stage, p.gl.GetShaderInfoLog(shader, infoLogSize))
	}
	return shader, nil
}

func (p *ShaderProgram) report(stage Stage, logText string) {
	d := Diagnostic{Stage: stage, Log: logText}
	p.diagnostics = append(p.diagnostics, d)
	log.Printf("shader %s failed:\n%s", stage, logText)
}

func (p *ShaderProgram) Handle() uint32 { return p.handle }

// Diagnostics returns the compile and link logs of a failed build, in the
// order they were produced. It is empty for a successful build.
func (p *ShaderProgram) Diagnostics() []Diagnostic { return p.diagnostics }

// Err returns a *BuildError when the build produced diagnostics.
func (p *ShaderProgram) Err() error {
	if len(p.diagnostics) == 0 {
		return nil
	}
	return &BuildError{Diagnostics: p.diagnostics}
}

func (p *ShaderProgram) Bind()   { p.gl.UseProgram(p.handle) }
func (p *ShaderProgram) Unbind() { p.gl.UseProgram(0) }

func (p *ShaderProgram) BindScope() *Binding {
	return bindScope(p)
}

func (p *ShaderProgram) Destroy() {
	if p.handle == 0 {
		return
	}
	p.gl.DeleteProgram(p.handle)
	p.handle = 0
}
