// Package gltest provides an in-memory graphics.GL for tests. It models
// the binding points, buffer stores, vertex array state, shader build
// status and polygon mode closely enough to check call ordering without a
// driver.
package gltest

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/richinsley/gopong/graphics"
)

type Attrib struct {
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Buffer     uint32
	Enabled    bool
}

type VertexArrayState struct {
	ElementBuffer uint32
	Attribs       map[uint32]*Attrib
}

type shaderState struct {
	kind     uint32
	source   string
	compiled bool
	log      string
	deleted  bool
}

type programState struct {
	attached []uint32
	linked   bool
	log      string
}

// GL is a fake graphics.GL. The zero value is not usable; call New.
type GL struct {
	next uint32

	Buffers      map[uint32][]byte
	VertexArrays map[uint32]*VertexArrayState
	shaders      map[uint32]*shaderState
	programs     map[uint32]*programState

	// Bound holds the buffer bound to each target outside of a vertex
	// array. The element array binding lives in VertexArrayState.
	Bound          map[uint32]uint32
	BoundVAO       uint32
	CurrentProgram uint32

	ViewportRect [4]int32
	ClearRGBA    [4]float32
	Clears       []uint32
	Mode         uint32
	Draws        int

	// Calls records entry point names in call order.
	Calls []string

	DeletedBuffers      []uint32
	DeletedVertexArrays []uint32
	DeletedShaders      []uint32
	DeletedPrograms     []uint32

	// Exhausted makes every Create* call return 0.
	Exhausted bool
	// CompileLogSuffix is appended to the log of every failed compile.
	CompileLogSuffix string

	err uint32
}

var _ graphics.GL = (*GL)(nil)

func New() *GL {
	return &GL{
		Buffers:      make(map[uint32][]byte),
		VertexArrays: make(map[uint32]*VertexArrayState),
		shaders:      make(map[uint32]*shaderState),
		programs:     make(map[uint32]*programState),
		Bound:        make(map[uint32]uint32),
		Mode:         graphics.Fill,
	}
}

func (g *GL) call(name string) { g.Calls = append(g.Calls, name) }

func (g *GL) fail(code uint32) {
	if g.err == graphics.NoError {
		g.err = code
	}
}

func (g *GL) alloc() uint32 {
	if g.Exhausted {
		return 0
	}
	g.next++
	return g.next
}

func (g *GL) CreateBuffer() uint32 {
	g.call("CreateBuffer")
	h := g.alloc()
	if h != 0 {
		g.Buffers[h] = nil
	}
	return h
}

func (g *GL) DeleteBuffer(b uint32) {
	g.call("DeleteBuffer")
	delete(g.Buffers, b)
	g.DeletedBuffers = append(g.DeletedBuffers, b)
	for t, bound := range g.Bound {
		if bound == b {
			g.Bound[t] = 0
		}
	}
}

// BoundBuffer reports the buffer bound to target, resolving the element
// array binding through the bound vertex array.
func (g *GL) BoundBuffer(target uint32) uint32 {
	if target == graphics.ElementArrayBuffer {
		if vao, ok := g.VertexArrays[g.BoundVAO]; ok {
			return vao.ElementBuffer
		}
	}
	return g.Bound[target]
}

func (g *GL) BindBuffer(target, b uint32) {
	g.call("BindBuffer")
	if _, ok := g.Buffers[b]; b != 0 && !ok {
		g.fail(graphics.InvalidValue)
		return
	}
	if target == graphics.ElementArrayBuffer {
		if vao, ok := g.VertexArrays[g.BoundVAO]; ok {
			vao.ElementBuffer = b
			return
		}
	}
	g.Bound[target] = b
}

func (g *GL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	g.call("BufferData")
	b := g.BoundBuffer(target)
	if b == 0 {
		g.fail(graphics.InvalidOperation)
		return
	}
	store := make([]byte, size)
	if data != nil && size > 0 {
		copy(store, unsafe.Slice((*byte)(data), size))
	}
	g.Buffers[b] = store
}

func (g *GL) GetBufferParameteri(target, pname uint32) int32 {
	g.call("GetBufferParameteri")
	b := g.BoundBuffer(target)
	if b == 0 || pname != graphics.BufferSize {
		g.fail(graphics.InvalidOperation)
		return 0
	}
	return int32(len(g.Buffers[b]))
}

func (g *GL) CreateVertexArray() uint32 {
	g.call("CreateVertexArray")
	h := g.alloc()
	if h != 0 {
		g.VertexArrays[h] = &VertexArrayState{Attribs: make(map[uint32]*Attrib)}
	}
	return h
}

func (g *GL) DeleteVertexArray(a uint32) {
	g.call("DeleteVertexArray")
	delete(g.VertexArrays, a)
	g.DeletedVertexArrays = append(g.DeletedVertexArrays, a)
	if g.BoundVAO == a {
		g.BoundVAO = 0
	}
}

func (g *GL) BindVertexArray(a uint32) {
	g.call("BindVertexArray")
	if _, ok := g.VertexArrays[a]; a != 0 && !ok {
		g.fail(graphics.InvalidOperation)
		return
	}
	g.BoundVAO = a
}

func (g *GL) attrib(index uint32) *Attrib {
	vao, ok := g.VertexArrays[g.BoundVAO]
	if !ok {
		return nil
	}
	a, ok := vao.Attribs[index]
	if !ok {
		a = &Attrib{}
		vao.Attribs[index] = a
	}
	return a
}

func (g *GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	g.call("VertexAttribPointer")
	a := g.attrib(index)
	if a == nil || g.Bound[graphics.ArrayBuffer] == 0 {
		g.fail(graphics.InvalidOperation)
		return
	}
	a.Size, a.Type, a.Normalized, a.Stride, a.Offset = size, xtype, normalized, stride, offset
	a.Buffer = g.Bound[graphics.ArrayBuffer]
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	g.call("EnableVertexAttribArray")
	a := g.attrib(index)
	if a == nil {
		g.fail(graphics.InvalidOperation)
		return
	}
	a.Enabled = true
}

func (g *GL) DisableVertexAttribArray(index uint32) {
	g.call("DisableVertexAttribArray")
	a := g.attrib(index)
	if a == nil {
		g.fail(graphics.InvalidOperation)
		return
	}
	a.Enabled = false
}

func (g *GL) CreateShader(xtype uint32) uint32 {
	g.call("CreateShader")
	h := g.alloc()
	if h != 0 {
		g.shaders[h] = &shaderState{kind: xtype}
	}
	return h
}

func (g *GL) ShaderSource(s uint32, src string) {
	g.call("ShaderSource")
	if sh, ok := g.shaders[s]; ok {
		sh.source = src
	}
}

// CompileShader accepts a source with a main function and balanced braces
// and parentheses. Anything else fails with a GLSL-style log.
func (g *GL) CompileShader(s uint32) {
	g.call("CompileShader")
	sh, ok := g.shaders[s]
	if !ok {
		g.fail(graphics.InvalidValue)
		return
	}
	sh.compiled, sh.log = compile(sh.source)
	if !sh.compiled {
		sh.log += g.CompileLogSuffix
	}
}

func compile(src string) (bool, string) {
	var depth, parens int
	for i, line := range strings.Split(src, "\n") {
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		parens += strings.Count(line, "(") - strings.Count(line, ")")
		if depth < 0 || parens < 0 {
			return false, fmt.Sprintf("0:%d(1): error: syntax error, unexpected '}'\n", i+1)
		}
	}
	if depth != 0 || parens != 0 {
		return false, "0:1(1): error: syntax error, unexpected end of file\n"
	}
	if !strings.Contains(src, "void main") {
		return false, "0:1(1): error: function `main' is not defined\n"
	}
	return true, ""
}

func (g *GL) GetShaderi(s, pname uint32) int32 {
	g.call("GetShaderi")
	sh, ok := g.shaders[s]
	if !ok {
		g.fail(graphics.InvalidValue)
		return 0
	}
	switch pname {
	case graphics.CompileStatus:
		if sh.compiled {
			return graphics.True
		}
		return graphics.False
	case graphics.InfoLogLength:
		return int32(len(sh.log))
	}
	g.fail(graphics.InvalidEnum)
	return 0
}

func truncate(s string, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	if int32(len(s)) > bufSize-1 {
		return s[:bufSize-1]
	}
	return s
}

func (g *GL) GetShaderInfoLog(s uint32, bufSize int32) string {
	g.call("GetShaderInfoLog")
	sh, ok := g.shaders[s]
	if !ok {
		return ""
	}
	return truncate(sh.log, bufSize)
}

func (g *GL) DeleteShader(s uint32) {
	g.call("DeleteShader")
	if sh, ok := g.shaders[s]; ok {
		sh.deleted = true
	}
	g.DeletedShaders = append(g.DeletedShaders, s)
}

// LiveShaders counts shader objects that were created and not deleted.
func (g *GL) LiveShaders() int {
	n := 0
	for _, sh := range g.shaders {
		if !sh.deleted {
			n++
		}
	}
	return n
}

func (g *GL) CreateProgram() uint32 {
	g.call("CreateProgram")
	h := g.alloc()
	if h != 0 {
		g.programs[h] = &programState{}
	}
	return h
}

func (g *GL) AttachShader(p, s uint32) {
	g.call("AttachShader")
	prog, ok := g.programs[p]
	if !ok {
		g.fail(graphics.InvalidValue)
		return
	}
	prog.attached = append(prog.attached, s)
}

func (g *GL) LinkProgram(p uint32) {
	g.call("LinkProgram")
	prog, ok := g.programs[p]
	if !ok {
		g.fail(graphics.InvalidValue)
		return
	}
	var vertex, fragment bool
	for _, s := range prog.attached {
		sh := g.shaders[s]
		if sh == nil || !sh.compiled {
			prog.linked = false
			prog.log = "error: linking with uncompiled/unspecialized shader\n"
			return
		}
		vertex = vertex || sh.kind == graphics.VertexShader
		fragment = fragment || sh.kind == graphics.FragmentShader
	}
	if !vertex || !fragment {
		prog.linked = false
		prog.log = "error: program lacks a vertex or fragment shader\n"
		return
	}
	prog.linked, prog.log = true, ""
}

func (g *GL) GetProgrami(p, pname uint32) int32 {
	g.call("GetProgrami")
	prog, ok := g.programs[p]
	if !ok {
		g.fail(graphics.InvalidValue)
		return 0
	}
	switch pname {
	case graphics.LinkStatus:
		if prog.linked {
			return graphics.True
		}
		return graphics.False
	case graphics.InfoLogLength:
		return int32(len(prog.log))
	}
	g.fail(graphics.InvalidEnum)
	return 0
}

func (g *GL) GetProgramInfoLog(p uint32, bufSize int32) string {
	g.call("GetProgramInfoLog")
	prog, ok := g.programs[p]
	if !ok {
		return ""
	}
	return truncate(prog.log, bufSize)
}

func (g *GL) DeleteProgram(p uint32) {
	g.call("DeleteProgram")
	delete(g.programs, p)
	g.DeletedPrograms = append(g.DeletedPrograms, p)
	if g.CurrentProgram == p {
		g.CurrentProgram = 0
	}
}

// Linked reports whether program p exists and linked successfully.
func (g *GL) Linked(p uint32) bool {
	prog, ok := g.programs[p]
	return ok && prog.linked
}

func (g *GL) UseProgram(p uint32) {
	g.call("UseProgram")
	if _, ok := g.programs[p]; p != 0 && !ok {
		g.fail(graphics.InvalidValue)
		return
	}
	g.CurrentProgram = p
}

func (g *GL) Viewport(x, y, width, height int32) {
	g.call("Viewport")
	if width < 0 || height < 0 {
		g.fail(graphics.InvalidValue)
		return
	}
	g.ViewportRect = [4]int32{x, y, width, height}
}

func (g *GL) ClearColor(r, gr, b, a float32) {
	g.call("ClearColor")
	g.ClearRGBA = [4]float32{r, gr, b, a}
}

func (g *GL) Clear(mask uint32) {
	g.call("Clear")
	const all = graphics.ColorBufferBit | graphics.DepthBufferBit | graphics.StencilBufferBit
	if mask&^all != 0 {
		g.fail(graphics.InvalidValue)
		return
	}
	g.Clears = append(g.Clears, mask)
}

// DrawElements validates what a driver would need to draw: a linked
// program, a bound vertex array with an enabled attribute backed by a
// buffer, and an element buffer large enough for count indices.
func (g *GL) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	g.call("DrawElements")
	if count < 0 {
		g.fail(graphics.InvalidValue)
		return
	}
	if !g.Linked(g.CurrentProgram) {
		g.fail(graphics.InvalidOperation)
		return
	}
	vao, ok := g.VertexArrays[g.BoundVAO]
	if !ok || vao.ElementBuffer == 0 {
		g.fail(graphics.InvalidOperation)
		return
	}
	enabled := false
	for _, a := range vao.Attribs {
		if a.Enabled {
			if _, ok := g.Buffers[a.Buffer]; !ok {
				g.fail(graphics.InvalidOperation)
				return
			}
			enabled = true
		}
	}
	if !enabled {
		g.fail(graphics.InvalidOperation)
		return
	}
	size := graphics.ElementType(xtype).Size()
	if size == 0 {
		g.fail(graphics.InvalidEnum)
		return
	}
	if int(offset)+int(count)*size > len(g.Buffers[vao.ElementBuffer]) {
		g.fail(graphics.InvalidOperation)
		return
	}
	g.Draws++
}

func (g *GL) GetInteger(pname uint32) int32 {
	g.call("GetInteger")
	switch pname {
	case graphics.PolygonMode:
		return int32(g.Mode)
	}
	g.fail(graphics.InvalidEnum)
	return 0
}

func (g *GL) PolygonMode(face, mode uint32) {
	g.call("PolygonMode")
	if face != graphics.FrontAndBack {
		g.fail(graphics.InvalidEnum)
		return
	}
	switch mode {
	case graphics.Point, graphics.Line, graphics.Fill:
		g.Mode = mode
	default:
		g.fail(graphics.InvalidEnum)
	}
}

func (g *GL) GetError() uint32 {
	g.call("GetError")
	err := g.err
	g.err = graphics.NoError
	return err
}

// Count returns how many times the named entry point was called.
func (g *GL) Count(name string) int {
	n := 0
	for _, c := range g.Calls {
		if c == name {
			n++
		}
	}
	return n
}
