package block

import "fmt"

// Block is an axis-aligned rectangle with its top-left corner at (X,Y).
// It is a value type: every update returns a new Block, so stored and
// in-flight copies never alias.
type Block struct {
	X, Y float64
	W, H float64
}

// New constructs a block. Width and height must be positive; anything else is
// a programmer error and fails fast here rather than corrupting geometry
// downstream.
func New(x, y, w, h float64) Block {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("block: non-positive size %gx%g", w, h))
	}
	return Block{X: x, Y: y, W: w, H: h}
}

// Contains reports whether (px,py) lies inside the block. Bounds are
// inclusive on all four edges, so points on a shared border between two
// adjacent blocks hit both.
func (b Block) Contains(px, py float64) bool {
	return px >= b.X && px <= b.X+b.W && py >= b.Y && py <= b.Y+b.H
}

// CenteredAt returns a copy whose center is at (cx,cy).
func (b Block) CenteredAt(cx, cy float64) Block {
	b.X = cx - b.W/2
	b.Y = cy - b.H/2
	return b
}

// WithPosition returns a copy with the top-left corner moved to (x,y).
func (b Block) WithPosition(x, y float64) Block {
	b.X = x
	b.Y = y
	return b
}

// WithSize returns a copy resized to w x h, top-left corner unchanged.
func (b Block) WithSize(w, h float64) Block {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("block: non-positive size %gx%g", w, h))
	}
	b.W = w
	b.H = h
	return b
}

func (b Block) CenterX() float64 { return b.X + b.W/2 }
func (b Block) CenterY() float64 { return b.Y + b.H/2 }
