package inputs

import (
	"log"

	"github.com/richinsley/gopong/graphics"
)

// State is the part of the frame loop that input can change.
type State struct {
	// Close is terminal: once set, no event clears it.
	Close bool
	// Clear is applied at the start of every frame.
	Clear graphics.ClearCommand
	// Reload asks the renderer to rebuild its shader program.
	Reload bool
}

// Dispatch applies ev to s and returns the new state. Resize and the
// polygon mode toggle act on the GL context directly.
func Dispatch(gl graphics.GL, s State, ev Event) State {
	switch ev := ev.(type) {
	case Resize:
		gl.Viewport(0, 0, int32(ev.Width), int32(ev.Height))
	case KeyPress:
		switch ev.Key {
		case KeyEscape:
			s.Close = true
		case KeyL:
			TogglePolygonMode(gl)
		case KeyF5:
			s.Reload = true
		}
	}
	return s
}

// TogglePolygonMode switches between filled and wireframe rasterization.
// The current mode is read back from GL rather than tracked here.
func TogglePolygonMode(gl graphics.GL) {
	switch uint32(gl.GetInteger(graphics.PolygonMode)) {
	case graphics.Fill:
		gl.PolygonMode(graphics.FrontAndBack, graphics.Line)
	case graphics.Line:
		gl.PolygonMode(graphics.FrontAndBack, graphics.Fill)
	}
}

// KeyHandler maps the state on a key press. It must not touch GL.
type KeyHandler func(State) State

// SetClearColor returns a KeyHandler that replaces the clear color.
func SetClearColor(r, g, b float32) KeyHandler {
	return func(s State) State {
		s.Clear = s.Clear.WithColor(r, g, b)
		return s
	}
}

// ColorKeys are the clear color presets bound by the renderer.
var ColorKeys = map[Key]KeyHandler{
	KeyR: SetClearColor(0.6, 0.1, 0.1),
	KeyG: SetClearColor(0.1, 0.5, 0.2),
	KeyB: SetClearColor(0.1, 0.2, 0.6),
	KeyW: SetClearColor(0.9, 0.9, 0.9),
	KeyK: SetClearColor(0, 0, 0),
}

// Dispatcher owns the input state of one window. Window callbacks Push
// events; Flush applies them once per frame on the render thread.
type Dispatcher struct {
	gl    graphics.GL
	state State
	keys  map[Key]KeyHandler
	queue Queue
}

func NewDispatcher(gl graphics.GL, clear graphics.ClearCommand) *Dispatcher {
	return &Dispatcher{
		gl:    gl,
		state: State{Clear: clear},
		keys:  make(map[Key]KeyHandler),
	}
}

// RegisterKey runs f on every press of key, after the built-in handling.
func (d *Dispatcher) RegisterKey(key Key, f KeyHandler) {
	d.keys[key] = f
}

func (d *Dispatcher) Push(ev Event) {
	d.queue.Push(ev)
}

// Flush dispatches every queued event in arrival order.
func (d *Dispatcher) Flush() {
	for _, ev := range d.queue.Drain() {
		d.Dispatch(ev)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	prev := d.state
	next := Dispatch(d.gl, prev, ev)
	if press, ok := ev.(KeyPress); ok {
		if f, ok := d.keys[press.Key]; ok {
			next = f(next)
		}
	}
	next.Close = next.Close || prev.Close
	if next.Close && !prev.Close {
		log.Println("Close requested")
	}
	d.state = next
}

func (d *Dispatcher) State() State { return d.state }

func (d *Dispatcher) ShouldClose() bool { return d.state.Close }

func (d *Dispatcher) ClearCommand() graphics.ClearCommand { return d.state.Clear }

// RequestReload marks the shader program for rebuilding on the next frame.
func (d *Dispatcher) RequestReload() { d.state.Reload = true }

// TakeReload reports and clears a pending reload request.
func (d *Dispatcher) TakeReload() bool {
	r := d.state.Reload
	d.state.Reload = false
	return r
}
