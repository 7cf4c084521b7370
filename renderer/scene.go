package renderer

import (
	"fmt"
	"log"

	"github.com/richinsley/gopong/graphics"
)

// MeshData is CPU-side geometry: xyz positions and triangle indices.
type MeshData struct {
	Name     string
	Vertices []float32
	Indices  []uint32
}

var (
	// Quad is the centered square used as the default scene.
	Quad = MeshData{
		Name: "quad",
		Vertices: []float32{
			0.5, 0.5, 0.0,
			0.5, -0.5, 0.0,
			-0.5, -0.5, 0.0,
			-0.5, 0.5, 0.0,
		},
		Indices: []uint32{
			0, 1, 2,
			2, 3, 0,
		},
	}

	// Paddles is two triangles standing in for the pong paddles.
	Paddles = MeshData{
		Name: "paddles",
		Vertices: []float32{
			0.1, 0.7, 0.0,
			0.1, 0.1, 0.0,
			0.7, 0.1, 0.0,
			-0.1, 0.7, 0.0,
			-0.7, 0.1, 0.0,
			-0.1, 0.1, 0.0,
		},
		Indices: []uint32{
			0, 1, 2,
			3, 4, 5,
		},
	}
)

// MeshByName returns the named built-in mesh.
func MeshByName(name string) (MeshData, error) {
	switch name {
	case Quad.Name:
		return Quad, nil
	case Paddles.Name:
		return Paddles, nil
	}
	return MeshData{}, fmt.Errorf("unknown mesh %q", name)
}

// Mesh owns the GPU objects for one indexed triangle list.
type Mesh struct {
	gl       graphics.GL
	vao      *graphics.VertexArray
	vbo      *graphics.Buffer
	ebo      *graphics.Buffer
	position *graphics.VertexAttribute
	count    int32
}

// NewMesh uploads data and records its layout in a new vertex array. The
// index buffer binding is part of the vertex array state, so the vertex
// array is unbound before the vertex buffer and the index buffer is left
// bound inside it.
func NewMesh(gl graphics.GL, data MeshData) (*Mesh, error) {
	m := &Mesh{gl: gl, count: int32(len(data.Indices))}
	var err error

	if m.vao, err = graphics.NewVertexArray(gl); err != nil {
		return nil, err
	}
	if m.vbo, err = graphics.NewBuffer(gl, graphics.VertexData, graphics.UsageStaticDraw); err != nil {
		m.Destroy()
		return nil, err
	}
	if m.ebo, err = graphics.NewBuffer(gl, graphics.IndexData, graphics.UsageStaticDraw); err != nil {
		m.Destroy()
		return nil, err
	}

	vaoBinding := m.vao.BindScope()
	vboBinding := m.vbo.BindScope()
	m.vbo.UploadFloats(data.Vertices)
	m.ebo.Bind()
	m.ebo.UploadIndices(data.Indices)

	m.position, err = graphics.NewVertexAttribute(gl, graphics.VertexAttributeDesc{
		Slot:       0,
		Components: 3,
		Type:       graphics.TypeFloat,
		Normalized: false,
		Stride:     3 * 4,
		Offset:     0,
	})
	if err == nil {
		m.position.Enable()
	}
	vaoBinding.Release()
	vboBinding.Release()
	if err != nil {
		m.Destroy()
		return nil, err
	}

	log.Printf("Initialized mesh %s: %d vertices, %d indices", data.Name, len(data.Vertices)/3, len(data.Indices))
	return m, nil
}

// Draw issues the indexed draw call. The program must already be bound.
func (m *Mesh) Draw() {
	binding := m.vao.BindScope()
	defer binding.Release()
	m.gl.DrawElements(graphics.Triangles, m.count, uint32(graphics.TypeUnsignedInt), 0)
}

// Destroy releases every GPU object of the mesh.
func (m *Mesh) Destroy() {
	if m == nil {
		return
	}
	if m.ebo != nil {
		m.ebo.Destroy()
	}
	if m.vbo != nil {
		m.vbo.Destroy()
	}
	if m.vao != nil {
		m.vao.Destroy()
	}
}
