package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gopong/graphics"
	"github.com/richinsley/gopong/inputs"
	"github.com/richinsley/gopong/options"
)

// Window owns a GLFW window and its OpenGL context. Key and framebuffer
// size callbacks are queued on the dispatcher and applied in Update.
type Window struct {
	window *glfw.Window
	input  *inputs.Dispatcher
}

var _ graphics.Context = (*Window)(nil)

// New opens a window and makes its context current on the calling thread.
// Init must have been called first.
func New(opts *options.Options, input *inputs.Dispatcher) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		return nil, &graphics.SetupError{Op: "create window", Err: err}
	}

	w := &Window{
		window: win,
		input:  input,
	}
	win.MakeContextCurrent()
	win.SetKeyCallback(w.glfwKeyCallback)
	win.SetFramebufferSizeCallback(w.glfwFramebufferSizeCallback)

	return w, nil
}

// InitGraphics loads the GL entry points through this window's context.
// Call it once, before creating any GPU object.
func (w *Window) InitGraphics(gl graphics.Loader) error {
	w.MakeCurrent()
	if err := gl.Init(glfw.GetProcAddress); err != nil {
		return &graphics.SetupError{Op: "load OpenGL", Err: err}
	}
	log.Printf("OpenGL loaded")
	return nil
}

func (w *Window) glfwKeyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		w.input.Push(inputs.KeyPress{Key: translateKey(key)})
	case glfw.Release:
		w.input.Push(inputs.KeyRelease{Key: translateKey(key)})
	default:
		w.input.Push(inputs.Other{})
	}
}

func (w *Window) glfwFramebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.input.Push(inputs.Resize{Width: width, Height: height})
}

var keyMap = map[glfw.Key]inputs.Key{
	glfw.KeyEscape: inputs.KeyEscape,
	glfw.KeyL:      inputs.KeyL,
	glfw.KeyR:      inputs.KeyR,
	glfw.KeyG:      inputs.KeyG,
	glfw.KeyB:      inputs.KeyB,
	glfw.KeyW:      inputs.KeyW,
	glfw.KeyK:      inputs.KeyK,
	glfw.KeyF5:     inputs.KeyF5,
}

func translateKey(key glfw.Key) inputs.Key {
	if k, ok := keyMap[key]; ok {
		return k
	}
	return inputs.KeyUnknown
}

// Update applies the events queued since the last call, polls GLFW for
// new ones and presents the back buffer.
func (w *Window) Update() {
	w.input.Flush()
	if w.input.ShouldClose() {
		w.window.SetShouldClose(true)
	}
	glfw.PollEvents()
	w.window.SwapBuffers()
}

// MakeCurrent makes the context current for the calling goroutine.
func (w *Window) MakeCurrent() {
	w.window.MakeContextCurrent()
}

// Shutdown destroys the window and its context.
func (w *Window) Shutdown() {
	w.window.Destroy()
}

// ShouldClose reports whether the user closed the window or pressed Escape.
func (w *Window) ShouldClose() bool {
	return w.input.ShouldClose() || w.window.ShouldClose()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Init initializes GLFW and locks the calling goroutine to its OS thread.
// Must be called from the main thread.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	log.Printf("GLFW Initialized")
	return nil
}

// Terminate shuts GLFW down. Must be called from the main thread.
func Terminate() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
