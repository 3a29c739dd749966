package ui

import "github.com/hajimehoshi/ebiten/v2"

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
)

// SetInputForTest replaces the input functions during tests and returns a
// function to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
	}
}
