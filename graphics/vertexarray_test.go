package graphics_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/gopong/graphics"
	"github.com/richinsley/gopong/graphics/gltest"
)

const (
	passVertex = `#version 410 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos, 1.0);
}
`
	passFragment = `#version 410 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`
)

var (
	quad        = []float32{0.5, 0.5, 0, 0.5, -0.5, 0, -0.5, -0.5, 0, -0.5, 0.5, 0}
	quadIndices = []uint32{0, 1, 2, 2, 3, 0}
	position    = graphics.VertexAttributeDesc{Slot: 0, Components: 3, Type: graphics.TypeFloat, Stride: 3 * 4}
)

func TestVertexArrayBind(t *testing.T) {
	g := gltest.New()
	vao, err := graphics.NewVertexArray(g)
	require.NoError(t, err)
	vao.Bind()
	assert.Equal(t, vao.Handle(), g.BoundVAO)
	vao.Unbind()
	assert.Zero(t, g.BoundVAO)

	scope := vao.BindScope()
	assert.Equal(t, vao.Handle(), g.BoundVAO)
	scope.Release()
	assert.Zero(t, g.BoundVAO)

	h := vao.Handle()
	vao.Destroy()
	vao.Destroy()
	assert.Equal(t, []uint32{h}, g.DeletedVertexArrays)
}

func TestVertexArrayExhausted(t *testing.T) {
	g := gltest.New()
	g.Exhausted = true
	_, err := graphics.NewVertexArray(g)
	var setupErr *graphics.SetupError
	assert.True(t, errors.As(err, &setupErr))
}

func TestVertexAttributeRecordedInBoundArray(t *testing.T) {
	g := gltest.New()
	vao, err := graphics.NewVertexArray(g)
	require.NoError(t, err)
	vbo, err := graphics.NewBuffer(g, graphics.VertexData, graphics.UsageStaticDraw)
	require.NoError(t, err)

	vao.Bind()
	vbo.Bind()
	attr, err := graphics.NewVertexAttribute(g, position)
	require.NoError(t, err)
	attr.Enable()
	attr.Enable()

	state := g.VertexArrays[vao.Handle()].Attribs[0]
	require.NotNil(t, state)
	assert.True(t, state.Enabled)
	assert.Equal(t, int32(3), state.Size)
	assert.Equal(t, uint32(graphics.Float), state.Type)
	assert.Equal(t, int32(12), state.Stride)
	assert.Equal(t, vbo.Handle(), state.Buffer)

	attr.Disable()
	assert.False(t, state.Enabled)
	assert.Equal(t, position, attr.Desc(), "disable keeps the description")
	assert.Equal(t, uint32(graphics.NoError), g.GetError())
}

func TestVertexAttributeWithoutVertexArray(t *testing.T) {
	g := gltest.New()
	vbo, err := graphics.NewBuffer(g, graphics.VertexData, graphics.UsageStaticDraw)
	require.NoError(t, err)
	vbo.Bind()
	_, err = graphics.NewVertexAttribute(g, position)
	require.NoError(t, err)
	assert.Equal(t, uint32(graphics.InvalidOperation), g.GetError())
}

func TestVertexAttributeValidation(t *testing.T) {
	g := gltest.New()
	for _, desc := range []graphics.VertexAttributeDesc{
		{Components: 0, Type: graphics.TypeFloat},
		{Components: 5, Type: graphics.TypeFloat},
		{Components: 3, Type: graphics.TypeFloat, Stride: -4},
		{Components: 3, Type: graphics.ElementType(0x1234)},
	} {
		_, err := graphics.NewVertexAttribute(g, desc)
		var setupErr *graphics.SetupError
		assert.True(t, errors.As(err, &setupErr), "%+v", desc)
	}
	assert.Zero(t, g.Count("VertexAttribPointer"))
}

func TestElementTypeSize(t *testing.T) {
	assert.Equal(t, 1, graphics.TypeUnsignedByte.Size())
	assert.Equal(t, 2, graphics.TypeShort.Size())
	assert.Equal(t, 4, graphics.TypeFloat.Size())
	assert.Equal(t, 4, graphics.TypeUnsignedInt.Size())
	assert.Equal(t, 0, graphics.ElementType(0).Size())
}

// The full setup sequence: vertex array, vertex buffer, index buffer,
// attribute, then a draw of six unsigned int indices.
func TestIndexedQuadDraws(t *testing.T) {
	g := gltest.New()
	program, err := graphics.NewShaderProgram(g, passVertex, passFragment)
	require.NoError(t, err)
	require.NoError(t, program.Err())

	vao, err := graphics.NewVertexArray(g)
	require.NoError(t, err)
	vbo, err := graphics.NewBuffer(g, graphics.VertexData, graphics.UsageStaticDraw)
	require.NoError(t, err)
	ebo, err := graphics.NewBuffer(g, graphics.IndexData, graphics.UsageStaticDraw)
	require.NoError(t, err)

	vao.Bind()
	vbo.Bind()
	vbo.UploadFloats(quad)
	ebo.Bind()
	ebo.UploadIndices(quadIndices)
	attr, err := graphics.NewVertexAttribute(g, position)
	require.NoError(t, err)
	attr.Enable()
	vao.Unbind()
	vbo.Unbind()

	graphics.DefaultClear.Clear(g)
	program.Bind()
	vao.Bind()
	g.DrawElements(graphics.Triangles, 6, graphics.UnsignedInt, 0)
	vao.Unbind()

	assert.Equal(t, uint32(graphics.NoError), g.GetError())
	assert.Equal(t, 1, g.Draws)
	assert.Equal(t, 48, len(g.Buffers[vbo.Handle()]))
	assert.Equal(t, ebo.Handle(), g.VertexArrays[vao.Handle()].ElementBuffer)
}

func TestDrawWithoutLayoutFails(t *testing.T) {
	g := gltest.New()
	program, err := graphics.NewShaderProgram(g, passVertex, passFragment)
	require.NoError(t, err)
	vao, err := graphics.NewVertexArray(g)
	require.NoError(t, err)

	program.Bind()
	vao.Bind()
	g.DrawElements(graphics.Triangles, 6, graphics.UnsignedInt, 0)
	assert.Equal(t, uint32(graphics.InvalidOperation), g.GetError())
	assert.Zero(t, g.Draws)
}
