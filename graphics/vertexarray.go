package graphics

import (
	"errors"
	"fmt"
)

// VertexArray owns one GL vertex array object. Buffer binds and attribute
// layouts issued while it is bound are recorded into it; it keeps no
// references of its own.
type VertexArray struct {
	gl     GL
	handle uint32
}

func NewVertexArray(gl GL) (*VertexArray, error) {
	h := gl.CreateVertexArray()
	if h == 0 {
		return nil, &SetupError{Op: "create vertex array", Err: errors.New("no vertex array object available")}
	}
	return &VertexArray{gl: gl, handle: h}, nil
}

func (a *VertexArray) Handle() uint32 { return a.handle }

func (a *VertexArray) Bind()   { a.gl.BindVertexArray(a.handle) }
func (a *VertexArray) Unbind() { a.gl.BindVertexArray(0) }

func (a *VertexArray) BindScope() *Binding {
	return bindScope(a)
}

func (a *VertexArray) Destroy() {
	if a.handle == 0 {
		return
	}
	a.gl.DeleteVertexArray(a.handle)
	a.handle = 0
}

// ElementType tags the numeric type of vertex or index data.
type ElementType uint32

const (
	TypeByte          ElementType = Byte
	TypeUnsignedByte  ElementType = UnsignedByte
	TypeShort         ElementType = Short
	TypeUnsignedShort ElementType = UnsignedShort
	TypeInt           ElementType = Int
	TypeUnsignedInt   ElementType = UnsignedInt
	TypeFloat         ElementType = Float
)

// Size returns the size of one element in bytes, or 0 for unknown tags.
func (t ElementType) Size() int {
	switch t {
	case TypeByte, TypeUnsignedByte:
		return 1
	case TypeShort, TypeUnsignedShort:
		return 2
	case TypeInt, TypeUnsignedInt, TypeFloat:
		return 4
	}
	return 0
}

// VertexAttributeDesc describes how bytes of the bound vertex buffer feed a
// shader input slot.
type VertexAttributeDesc struct {
	Slot       uint32
	Components int32
	Type       ElementType
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// VertexAttribute is a layout registered for one slot of the vertex array
// that was bound when it was created.
type VertexAttribute struct {
	gl   GL
	desc VertexAttributeDesc
}

// NewVertexAttribute registers desc against the currently bound vertex
// array and vertex buffer. Both must be bound before calling.
func NewVertexAttribute(gl GL, desc VertexAttributeDesc) (*VertexAttribute, error) {
	if desc.Components < 1 || desc.Components > 4 {
		return nil, &SetupError{Op: fmt.Sprintf("vertex attribute %d", desc.Slot), Err: fmt.Errorf("component count %d outside 1..4", desc.Components)}
	}
	if desc.Stride < 0 {
		return nil, &SetupError{Op: fmt.Sprintf("vertex attribute %d", desc.Slot), Err: fmt.Errorf("negative stride %d", desc.Stride)}
	}
	if desc.Type.Size() == 0 {
		return nil, &SetupError{Op: fmt.Sprintf("vertex attribute %d", desc.Slot), Err: fmt.Errorf("unknown element type 0x%x", uint32(desc.Type))}
	}
	gl.VertexAttribPointer(desc.Slot, desc.Components, uint32(desc.Type), desc.Normalized, desc.Stride, desc.Offset)
	return &VertexAttribute{gl: gl, desc: desc}, nil
}

func (v *VertexAttribute) Desc() VertexAttributeDesc { return v.desc }

func (v *VertexAttribute) Enable()  { v.gl.EnableVertexAttribArray(v.desc.Slot) }
func (v *VertexAttribute) Disable() { v.gl.DisableVertexAttribArray(v.desc.Slot) }
