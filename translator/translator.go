package translator

import (
	"context"
	"fmt"
	"log"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translatorOnce sync.Once
	translator     *gst.ShaderTranslator
	translatorErr  error
)

// GetTranslator returns the process-wide translator, starting it on first
// use. Startup compiles the translator module and takes a moment.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
		if translatorErr == nil {
			log.Printf("Shader translator initialized")
		}
	})
	return translator, translatorErr
}

// WebGL translates WebGL2 GLSL ES sources into desktop GLSL 4.10.
type WebGL struct{}

func (WebGL) Translate(source, stage string) (string, error) {
	t, err := GetTranslator()
	if err != nil {
		return "", fmt.Errorf("failed to start shader translator: %w", err)
	}
	out, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return "", fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	return out.Code, nil
}
