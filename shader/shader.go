package shader

import (
	"fmt"
	"log"
	"os"

	"github.com/richinsley/gopong/graphics"
)

// Source is a vertex and fragment shader pair ready to compile.
type Source struct {
	Vertex   string
	Fragment string
	// Diagnostics holds translation failures. The affected stage keeps its
	// untranslated text, which the compiler will then reject with its own
	// log.
	Diagnostics []graphics.Diagnostic
}

// Translator rewrites a shader from one GLSL dialect to another. stage is
// "vertex" or "fragment".
type Translator interface {
	Translate(source, stage string) (string, error)
}

// Load reads both shader files. When tr is not nil each stage is passed
// through it. A file that cannot be read is a *graphics.SetupError.
func Load(vertexPath, fragmentPath string, tr Translator) (Source, error) {
	var src Source
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return src, &graphics.SetupError{Op: "read vertex shader", Err: err}
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return src, &graphics.SetupError{Op: "read fragment shader", Err: err}
	}
	src.Vertex = string(vs)
	src.Fragment = string(fs)

	if tr != nil {
		src.Vertex = src.translate(tr, src.Vertex, graphics.StageVertex)
		src.Fragment = src.translate(tr, src.Fragment, graphics.StageFragment)
	}
	return src, nil
}

func (s *Source) translate(tr Translator, text string, stage graphics.Stage) string {
	out, err := tr.Translate(text, string(stage))
	if err != nil {
		log.Printf("%s shader translation failed: %v", stage, err)
		s.Diagnostics = append(s.Diagnostics, graphics.Diagnostic{Stage: stage, Log: fmt.Sprint(err)})
		return text
	}
	return out
}
