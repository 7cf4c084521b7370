package renderer

import (
	"errors"
	"fmt"
	"log"

	"github.com/richinsley/gopong/graphics"
	"github.com/richinsley/gopong/inputs"
	"github.com/richinsley/gopong/options"
	"github.com/richinsley/gopong/shader"
	"github.com/richinsley/gopong/translator"
)

// Renderer builds the GPU objects once and then draws them every frame
// until the context asks to close.
type Renderer struct {
	gl         graphics.GL
	context    graphics.Context
	input      *inputs.Dispatcher
	opts       *options.Options
	translator shader.Translator
	watcher    *shader.Watcher
	program    *graphics.ShaderProgram
	mesh       *Mesh
	frameCount int64
}

// NewRenderer creates the shader program and mesh named by opts. The GL
// entry points must already be loaded on the calling thread.
func NewRenderer(gl graphics.GL, ctx graphics.Context, input *inputs.Dispatcher, opts *options.Options) (*Renderer, error) {
	r := &Renderer{
		gl:      gl,
		context: ctx,
		input:   input,
		opts:    opts,
	}
	for key, f := range inputs.ColorKeys {
		input.RegisterKey(key, f)
	}
	if *opts.WebGL {
		r.translator = translator.WebGL{}
	}

	var err error
	r.program, err = r.buildProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	data, err := MeshByName(*opts.Mesh)
	if err != nil {
		r.Shutdown()
		return nil, err
	}
	r.mesh, err = NewMesh(gl, data)
	if err != nil {
		r.Shutdown()
		return nil, fmt.Errorf("failed to create mesh: %w", err)
	}

	if *opts.Watch {
		r.watcher, err = shader.Watch(*opts.VertexShader, *opts.FragmentShader)
		if err != nil {
			r.Shutdown()
			return nil, err
		}
		log.Printf("Watching %s and %s", *opts.VertexShader, *opts.FragmentShader)
	}

	width, height := ctx.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	return r, nil
}

func (r *Renderer) buildProgram() (*graphics.ShaderProgram, error) {
	if r.translator == nil {
		return graphics.NewShaderProgramFromFiles(r.gl, *r.opts.VertexShader, *r.opts.FragmentShader)
	}
	src, err := shader.Load(*r.opts.VertexShader, *r.opts.FragmentShader, r.translator)
	if err != nil {
		return nil, err
	}
	return graphics.NewShaderProgramWithDiagnostics(r.gl, src.Vertex, src.Fragment, src.Diagnostics)
}

// Reload rebuilds the shader program from its files. The running program
// is replaced only by one that built cleanly.
func (r *Renderer) Reload() error {
	program, err := r.buildProgram()
	if err != nil {
		return err
	}
	if err := program.Err(); err != nil {
		program.Destroy()
		return err
	}
	r.program.Destroy()
	r.program = program
	log.Printf("Reloaded shader program %d", program.Handle())
	return nil
}

func (r *Renderer) pollReload() {
	reload := r.input.TakeReload()
	if r.watcher != nil {
		select {
		case <-r.watcher.Changes():
			reload = true
		default:
		}
	}
	if !reload {
		return
	}
	if err := r.Reload(); err != nil {
		var buildErr *graphics.BuildError
		if errors.As(err, &buildErr) {
			log.Printf("Keeping previous shader program: %v", err)
			return
		}
		log.Printf("Shader reload failed: %v", err)
	}
}

// Program returns the shader program currently used for drawing.
func (r *Renderer) Program() *graphics.ShaderProgram { return r.program }

// FrameCount returns the number of frames rendered so far.
func (r *Renderer) FrameCount() int64 { return r.frameCount }

// RenderFrame clears the framebuffer and draws the mesh. GL refuses to use
// a program that failed to link, so such a frame shows only the clear
// color. Any GL error raised during the frame is returned.
func (r *Renderer) RenderFrame() error {
	r.pollReload()

	r.input.ClearCommand().Clear(r.gl)
	if r.program.Err() == nil {
		r.program.Bind()
		r.mesh.Draw()
	}

	if code := r.gl.GetError(); code != graphics.NoError {
		return fmt.Errorf("OpenGL error 0x%x in frame %d", code, r.frameCount)
	}
	r.frameCount++
	return nil
}

// Run renders frames until the context should close.
func (r *Renderer) Run() error {
	start := r.context.Time()
	for !r.context.ShouldClose() {
		if err := r.RenderFrame(); err != nil {
			return err
		}
		r.context.Update()
	}
	log.Printf("Rendered %d frames in %.2fs", r.frameCount, r.context.Time()-start)
	return nil
}

// Shutdown releases the GPU objects and the file watcher. The context
// itself is shut down by its owner.
func (r *Renderer) Shutdown() {
	if r.watcher != nil {
		if err := r.watcher.Close(); err != nil {
			log.Printf("Failed to close shader watcher: %v", err)
		}
		r.watcher = nil
	}
	if r.mesh != nil {
		r.mesh.Destroy()
		r.mesh = nil
	}
	if r.program != nil {
		r.program.Destroy()
		r.program = nil
	}
}
