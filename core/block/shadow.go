package block

const (
	// ShadowMinOffset is the smallest gap between a block's top edge and the
	// bottom of its shadow, so a fingertip never hides the preview.
	ShadowMinOffset = 50
	// ShadowBuffer is the extra clearance used when the block itself is
	// taller than ShadowMinOffset.
	ShadowBuffer = 10
)

// Shadow is the placement preview hovering above a dragged block: same
// footprint, offset upward. Derived on every position update, never stored
// across updates.
type Shadow struct {
	X, Y float64
	W, H float64
}

// Above derives the shadow for a block at (x,y) sized w x h. The shadow's
// bottom edge ends strictly above y for every positive h: the offset is at
// least h+ShadowBuffer, so Y+h <= y-ShadowBuffer < y.
func Above(x, y, w, h float64) Shadow {
	offset := float64(ShadowMinOffset)
	if h+ShadowBuffer > offset {
		offset = h + ShadowBuffer
	}
	return Shadow{X: x, Y: y - offset - h, W: w, H: h}
}

// For derives the shadow for b at its current position.
func For(b Block) Shadow {
	return Above(b.X, b.Y, b.W, b.H)
}
