package graphics

// ClearMask selects which framebuffer attachments Clear resets.
type ClearMask uint32

const (
	ClearColorBit   ClearMask = ColorBufferBit
	ClearDepthBit   ClearMask = DepthBufferBit
	ClearStencilBit ClearMask = StencilBufferBit
)

// ClearCommand is a clear color plus the attachments to clear.
type ClearCommand struct {
	R, G, B, A float32
	Mask       ClearMask
}

// DefaultClear is the dark teal background.
var DefaultClear = ClearCommand{R: 0.2, G: 0.3, B: 0.3, A: 1.0, Mask: ClearColorBit}

func (c ClearCommand) Clear(gl GL) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(uint32(c.Mask))
}

// WithColor returns a copy with the color replaced, clamped to [0,1].
func (c ClearCommand) WithColor(r, g, b float32) ClearCommand {
	c.R, c.G, c.B = clamp01(r), clamp01(g), clamp01(b)
	return c
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
