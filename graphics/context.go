package graphics

import "unsafe"

// Context defines the interface for a window with an OpenGL context.
type Context interface {
	Shutdown()
	ShouldClose() bool
	// Update handles pending input, polls the OS and presents the frame.
	Update()
	GetFramebufferSize() (int, int)
	Time() float64
}

// Loader is a GL implementation whose entry points must be resolved
// through the context before use.
type Loader interface {
	Init(procAddr func(name string) unsafe.Pointer) error
}
