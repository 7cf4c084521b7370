package graphics

import "unsafe"

// OpenGL enum values used by this package. They match the values in
// github.com/go-gl/gl so either can be passed to a GL implementation.
const (
	False = 0
	True  = 1

	NoError          = 0
	InvalidEnum      = 0x0500
	InvalidValue     = 0x0501
	InvalidOperation = 0x0502

	ArrayBuffer        = 0x8892
	ElementArrayBuffer = 0x8893
	BufferSize         = 0x8764

	StaticDraw  = 0x88E4
	StaticRead  = 0x88E5
	StaticCopy  = 0x88E6
	StreamDraw  = 0x88E0
	StreamRead  = 0x88E1
	StreamCopy  = 0x88E2
	DynamicDraw = 0x88E8
	DynamicRead = 0x88E9
	DynamicCopy = 0x88EA

	Byte          = 0x1400
	UnsignedByte  = 0x1401
	Short         = 0x1402
	UnsignedShort = 0x1403
	Int           = 0x1404
	UnsignedInt   = 0x1405
	Float         = 0x1406

	VertexShader   = 0x8B31
	FragmentShader = 0x8B30
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
	InfoLogLength  = 0x8B84

	ColorBufferBit   = 0x00004000
	DepthBufferBit   = 0x00000100
	StencilBufferBit = 0x00000400

	Triangles = 0x0004

	FrontAndBack = 0x0408
	PolygonMode  = 0x0B40
	Point        = 0x1B00
	Line         = 0x1B01
	Fill         = 0x1B02
)

// GL describes the subset of OpenGL entry points used by the GPU object
// wrappers. Every method operates on the context that is current on the
// calling thread.
type GL interface {
	CreateBuffer() uint32
	DeleteBuffer(b uint32)
	BindBuffer(target, b uint32)
	// BufferData creates a new data store of size bytes for the buffer bound
	// to target, replacing any previous store. data may be nil.
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	GetBufferParameteri(target, pname uint32) int32

	CreateVertexArray() uint32
	DeleteVertexArray(a uint32)
	BindVertexArray(a uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	CreateShader(xtype uint32) uint32
	ShaderSource(s uint32, src string)
	CompileShader(s uint32)
	GetShaderi(s, pname uint32) int32
	// GetShaderInfoLog returns at most bufSize-1 bytes of the info log.
	GetShaderInfoLog(s uint32, bufSize int32) string
	DeleteShader(s uint32)

	CreateProgram() uint32
	AttachShader(p, s uint32)
	LinkProgram(p uint32)
	GetProgrami(p, pname uint32) int32
	GetProgramInfoLog(p uint32, bufSize int32) string
	DeleteProgram(p uint32)
	UseProgram(p uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)

	GetInteger(pname uint32) int32
	PolygonMode(face, mode uint32)
	GetError() uint32
}
