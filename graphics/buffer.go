package graphics

import (
	"errors"
	"fmt"
	"unsafe"
)

// BufferKind selects the binding target of a Buffer.
type BufferKind int

const (
	VertexData BufferKind = iota
	IndexData
)

func (k BufferKind) target() uint32 {
	if k == IndexData {
		return ElementArrayBuffer
	}
	return ArrayBuffer
}

func (k BufferKind) String() string {
	switch k {
	case VertexData:
		return "vertex"
	case IndexData:
		return "index"
	}
	return fmt.Sprintf("BufferKind(%d)", int(k))
}

// Usage hints the driver how often a buffer's contents change. See
// https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
type Usage int

const (
	// Set once, drawn many times.
	UsageStaticDraw Usage = iota
	// Changed often, drawn many times.
	UsageDynamicDraw
	// Set once, drawn a few times.
	UsageStreamDraw
	UsageStaticRead
	UsageDynamicRead
	UsageStreamRead
	UsageStaticCopy
	UsageDynamicCopy
	UsageStreamCopy
)

func (u Usage) toGL() uint32 {
	switch u {
	case UsageDynamicDraw:
		return DynamicDraw
	case UsageStreamDraw:
		return StreamDraw
	case UsageStaticRead:
		return StaticRead
	case UsageDynamicRead:
		return DynamicRead
	case UsageStreamRead:
		return StreamRead
	case UsageStaticCopy:
		return StaticCopy
	case UsageDynamicCopy:
		return DynamicCopy
	case UsageStreamCopy:
		return StreamCopy
	default:
		return StaticDraw
	}
}

// Buffer owns one GL buffer object.
//
// Upload methods write to whatever buffer is bound to the buffer's target,
// so the caller must Bind first. An index buffer's binding is recorded in
// the vertex array that is bound at the time.
type Buffer struct {
	gl     GL
	handle uint32
	kind   BufferKind
	usage  Usage
}

// NewBuffer allocates a buffer object. It fails only when the driver hands
// back no name, which callers should treat as fatal.
func NewBuffer(gl GL, kind BufferKind, usage Usage) (*Buffer, error) {
	h := gl.CreateBuffer()
	if h == 0 {
		return nil, &SetupError{Op: fmt.Sprintf("create %s buffer", kind), Err: errors.New("no buffer object available")}
	}
	return &Buffer{gl: gl, handle: h, kind: kind, usage: usage}, nil
}

func (b *Buffer) Handle() uint32   { return b.handle }
func (b *Buffer) Kind() BufferKind { return b.kind }
func (b *Buffer) Usage() Usage     { return b.usage }

func (b *Buffer) Bind() {
	b.gl.BindBuffer(b.kind.target(), b.handle)
}

func (b *Buffer) Unbind() {
	b.gl.BindBuffer(b.kind.target(), 0)
}

// BindScope binds the buffer until the returned Binding is released.
func (b *Buffer) BindScope() *Binding {
	return bindScope(b)
}

// UploadFloats replaces the contents of the bound buffer with data.
func (b *Buffer) UploadFloats(data []float32) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	b.gl.BufferData(b.kind.target(), len(data)*4, ptr, b.usage.toGL())
}

// UploadIndices replaces the contents of the bound buffer with data.
func (b *Buffer) UploadIndices(data []uint32) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	b.gl.BufferData(b.kind.target(), len(data)*4, ptr, b.usage.toGL())
}

// Destroy releases the buffer object. Subsequent calls do nothing.
func (b *Buffer) Destroy() {
	if b.handle == 0 {
		return
	}
	b.gl.DeleteBuffer(b.handle)
	b.handle = 0
}
