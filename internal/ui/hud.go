package ui

import (
	"image"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// Ebiten's debug font draws 6x13 glyphs; used to center button labels.
	debugCharW = 6
	debugCharH = 13
)

// Button is a basic clickable control with rectangular bounds and a label.
type Button struct {
	r       image.Rectangle
	Text    string
	OnClick func()
	pressed bool
	hovered bool
}

func NewButton(text string, onClick func()) *Button {
	return &Button{Text: text, OnClick: onClick}
}

func (b *Button) Rect() image.Rectangle     { return b.r }
func (b *Button) SetRect(r image.Rectangle) { b.r = r }

// Draw renders the button and its centered label.
func (b *Button) Draw(dst *ebiten.Image) {
	drawButton(dst, b.r, colButtonFill, colButtonBorder, b.pressed)
	w := debugCharW * utf8.RuneCountInString(b.Text)
	x := b.r.Min.X + (b.r.Dx()-w)/2
	y := b.r.Min.Y + (b.r.Dy()-debugCharH)/2
	ebitenutil.DebugPrintAt(dst, b.Text, x, y)
}

// Handle processes the pointer at (mx,my). OnClick fires once per press, on
// the press edge. Returns true while the pointer is pressed inside the
// button, so callers can stop the press from reaching the board.
func (b *Button) Handle(mx, my int, pressed bool) bool {
	inside := image.Pt(mx, my).In(b.r)
	b.hovered = inside
	if pressed && inside {
		if !b.pressed && b.OnClick != nil {
			b.OnClick()
		}
		b.pressed = true
		return true
	}
	b.pressed = false
	return false
}
