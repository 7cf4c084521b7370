package graphics_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/gopong/graphics"
	"github.com/richinsley/gopong/graphics/gltest"
)

func TestBufferBindUnbind(t *testing.T) {
	kinds := []graphics.BufferKind{graphics.VertexData, graphics.IndexData}
	usages := []graphics.Usage{graphics.UsageStaticDraw, graphics.UsageDynamicDraw, graphics.UsageStreamCopy}
	for _, kind := range kinds {
		for _, usage := range usages {
			g := gltest.New()
			b, err := graphics.NewBuffer(g, kind, usage)
			require.NoError(t, err)
			target := uint32(graphics.ArrayBuffer)
			if kind == graphics.IndexData {
				target = graphics.ElementArrayBuffer
			}

			b.Unbind()
			assert.Equal(t, uint32(0), g.BoundBuffer(target))
			b.Bind()
			b.Bind()
			assert.Equal(t, b.Handle(), g.BoundBuffer(target), "%s/%d", kind, usage)
			b.Unbind()
			assert.Equal(t, uint32(0), g.BoundBuffer(target))
			assert.Equal(t, uint32(graphics.NoError), g.GetError())
		}
	}
}

func TestBufferHandlesAreDistinct(t *testing.T) {
	g := gltest.New()
	a, err := graphics.NewBuffer(g, graphics.VertexData, graphics.UsageStaticDraw)
	require.NoError(t, err)
	b, err := graphics.NewBuffer(g, graphics.VertexData, graphics.UsageStaticDraw)
	require.NoError(t, err)
	assert.NotZero(t, a.Handle())
	assert.NotEqual(t, a.Handle(), b.Handle())
}

func TestBufferUploadSizes(t *testing.T) {
	g := gltest.New()
	vbo, err := graphics.NewBuffer(g, graphics.VertexData, graphics.UsageDynamicDraw)
	require.NoError(t, err)
	vbo.Bind()

	vbo.UploadFloats([]float32{1, 2, 3, 4, 5, 6})
	assert.Equal(t, int32(24), g.GetBufferParameteri(graphics.ArrayBuffer, graphics.BufferSize))

	// A second upload replaces the store rather than appending.
	vbo.UploadFloats([]float32{1, 2})
	assert.Equal(t, int32(8), g.GetBufferParameteri(graphics.ArrayBuffer, graphics.BufferSize))

	vbo.UploadFloats(nil)
	assert.Equal(t, int32(0), g.GetBufferParameteri(graphics.ArrayBuffer, graphics.BufferSize))

	vao, err := graphics.NewVertexArray(g)
	require.NoError(t, err)
	vao.Bind()
	ebo, err := graphics.NewBuffer(g, graphics.IndexData, graphics.UsageStaticDraw)
	require.NoError(t, err)
	ebo.Bind()
	ebo.UploadIndices([]uint32{0, 1, 2, 2, 3, 0})
	assert.Equal(t, int32(24), g.GetBufferParameteri(graphics.ElementArrayBuffer, graphics.BufferSize))
	ebo.UploadIndices([]uint32{0, 1, 2})
	assert.Equal(t, int32(12), g.GetBufferParameteri(graphics.ElementArrayBuffer, graphics.BufferSize))
	assert.Equal(t, uint32(graphics.NoError), g.GetError())
}

func TestBufferUploadCopiesData(t *testing.T) {
	g := gltest.New()
	b, err := graphics.NewBuffer(g, graphics.VertexData, graphics.UsageStaticDraw)
	require.NoError(t, err)
	b.Bind()
	b.UploadFloats([]float32{1})
	// 1.0f little-endian
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, g.Buffers[b.Handle()])
}

func TestBufferExhausted(t *testing.T) {
	g := gltest.New()
	g.Exhausted = true
	_, err := graphics.NewBuffer(g, graphics.IndexData, graphics.UsageStaticDraw)
	var setupErr *graphics.SetupError
	require.True(t, errors.As(err, &setupErr))
	assert.Contains(t, err.Error(), "index buffer")
}

func TestBufferDestroyOnce(t *testing.T) {
	g := gltest.New()
	b, err := graphics.NewBuffer(g, graphics.VertexData, graphics.UsageStaticDraw)
	require.NoError(t, err)
	h := b.Handle()
	b.Destroy()
	b.Destroy()
	assert.Equal(t, []uint32{h}, g.DeletedBuffers)
	assert.Zero(t, b.Handle())
}

func TestBufferBindScope(t *testing.T) {
	g := gltest.New()
	b, err := graphics.NewBuffer(g, graphics.VertexData, graphics.UsageStaticDraw)
	require.NoError(t, err)

	func() {
		scope := b.BindScope()
		defer scope.Release()
		assert.Equal(t, b.Handle(), g.BoundBuffer(graphics.ArrayBuffer))
	}()
	assert.Equal(t, uint32(0), g.BoundBuffer(graphics.ArrayBuffer))

	scope := b.BindScope()
	scope.Release()
	b.Bind()
	scope.Release()
	assert.Equal(t, b.Handle(), g.BoundBuffer(graphics.ArrayBuffer), "second Release must not unbind")
}
