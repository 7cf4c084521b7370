package graphics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/richinsley/gopong/graphics"
	"github.com/richinsley/gopong/graphics/gltest"
)

func TestClearCommand(t *testing.T) {
	g := gltest.New()
	c := graphics.ClearCommand{R: 0.1, G: 0.2, B: 0.3, A: 1, Mask: graphics.ClearColorBit | graphics.ClearDepthBit}
	c.Clear(g)
	c.Clear(g)

	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, g.ClearRGBA)
	assert.Equal(t, []uint32{graphics.ColorBufferBit | graphics.DepthBufferBit, graphics.ColorBufferBit | graphics.DepthBufferBit}, g.Clears)
	assert.Equal(t, uint32(graphics.NoError), g.GetError())
}

func TestClearCommandWithColor(t *testing.T) {
	c := graphics.DefaultClear.WithColor(2, -1, 0.5)
	assert.Equal(t, float32(1), c.R)
	assert.Equal(t, float32(0), c.G)
	assert.Equal(t, float32(0.5), c.B)
	assert.Equal(t, graphics.DefaultClear.A, c.A)
	assert.Equal(t, graphics.DefaultClear.Mask, c.Mask)
	assert.Equal(t, float32(0.2), graphics.DefaultClear.R, "WithColor returns a copy")
}
