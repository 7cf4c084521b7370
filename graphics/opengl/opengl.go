// Package opengl implements graphics.GL on top of the go-gl 4.1 core
// bindings.
package opengl

import (
	"fmt"
	"sync"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gopong/graphics"
)

var (
	_ graphics.GL     = (*OpenGL)(nil)
	_ graphics.Loader = (*OpenGL)(nil)
)

var glInitOnce sync.Once

// OpenGL forwards to the process-wide go-gl function table.
type OpenGL struct{}

func New() *OpenGL { return &OpenGL{} }

// Init loads the GL entry points. Only the first call does any work; the
// context must be current on the calling thread.
func (*OpenGL) Init(procAddr func(name string) unsafe.Pointer) error {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.InitWithProcAddrFunc(procAddr)
	})
	if initErr != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	return nil
}

func (*OpenGL) CreateBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (*OpenGL) DeleteBuffer(b uint32)       { gl.DeleteBuffers(1, &b) }
func (*OpenGL) BindBuffer(target, b uint32) { gl.BindBuffer(target, b) }

func (*OpenGL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (*OpenGL) GetBufferParameteri(target, pname uint32) int32 {
	var v int32
	gl.GetBufferParameteriv(target, pname, &v)
	return v
}

func (*OpenGL) CreateVertexArray() uint32 {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return a
}

func (*OpenGL) DeleteVertexArray(a uint32) { gl.DeleteVertexArrays(1, &a) }
func (*OpenGL) BindVertexArray(a uint32)   { gl.BindVertexArray(a) }

func (*OpenGL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (*OpenGL) EnableVertexAttribArray(index uint32)  { gl.EnableVertexAttribArray(index) }
func (*OpenGL) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (*OpenGL) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (*OpenGL) ShaderSource(s uint32, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s, 1, csources, nil)
	free()
}

func (*OpenGL) CompileShader(s uint32) { gl.CompileShader(s) }

func (*OpenGL) GetShaderi(s, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(s, pname, &v)
	return v
}

func (*OpenGL) GetShaderInfoLog(s uint32, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]uint8, bufSize)
	var n int32
	gl.GetShaderInfoLog(s, bufSize, &n, &buf[0])
	return string(buf[:n])
}

func (*OpenGL) DeleteShader(s uint32)    { gl.DeleteShader(s) }
func (*OpenGL) CreateProgram() uint32    { return gl.CreateProgram() }
func (*OpenGL) AttachShader(p, s uint32) { gl.AttachShader(p, s) }
func (*OpenGL) LinkProgram(p uint32)     { gl.LinkProgram(p) }

func (*OpenGL) GetProgrami(p, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(p, pname, &v)
	return v
}

func (*OpenGL) GetProgramInfoLog(p uint32, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]uint8, bufSize)
	var n int32
	gl.GetProgramInfoLog(p, bufSize, &n, &buf[0])
	return string(buf[:n])
}

func (*OpenGL) DeleteProgram(p uint32) { gl.DeleteProgram(p) }
func (*OpenGL) UseProgram(p uint32)    { gl.UseProgram(p) }

func (*OpenGL) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (*OpenGL) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (*OpenGL) Clear(mask uint32)                  { gl.Clear(mask) }

func (*OpenGL) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, xtype, offset)
}

// GetInteger returns the first value of pname. POLYGON_MODE may report a
// front and a back value, so room for two is reserved.
func (*OpenGL) GetInteger(pname uint32) int32 {
	var v [2]int32
	gl.GetIntegerv(pname, &v[0])
	return v[0]
}

func (*OpenGL) PolygonMode(face, mode uint32) { gl.PolygonMode(face, mode) }
func (*OpenGL) GetError() uint32              { return gl.GetError() }
