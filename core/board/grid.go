package board

import (
	"fmt"
	"math"

	game_log "github.com/blockdropgame/blockdrop/internal/log"
)

// Size is the number of cells per side. The board is always square.
const Size = 10

// Cell is a grid coordinate. Row/Col may be negative or >= Size; callers use
// out-of-range cells to detect drops outside the board.
type Cell struct{ Row, Col int }

// Point is a screen-space position in pixels.
type Point struct{ X, Y float64 }

// Grid owns the occupancy matrix and the screen<->grid mapping. Geometry is
// fixed at construction; only occupancy mutates.
type Grid struct {
	screenW  float64
	screenH  float64
	cellSize float64
	offsetX  float64
	offsetY  float64
	cells    [Size][Size]bool
	logger   *game_log.Logger
}

// New derives the board geometry from the screen size: the board spans 80% of
// the screen width, is square, horizontally centered, and vertically centered
// within screenH. offsetY may be negative when screenH is smaller than the
// board; that is allowed.
func New(screenW, screenH float64, logger *game_log.Logger) *Grid {
	if screenW <= 0 || screenH <= 0 {
		panic(fmt.Sprintf("board: non-positive screen size %gx%g", screenW, screenH))
	}
	width := screenW * 0.8
	g := &Grid{
		screenW:  screenW,
		screenH:  screenH,
		cellSize: width / Size,
		offsetX:  screenW * 0.1,
		offsetY:  (screenH - width) / 2,
		logger:   logger,
	}
	logger.Debugf("[BOARD] New: screen=%gx%g cell=%g offset=(%g,%g)", screenW, screenH, g.cellSize, g.offsetX, g.offsetY)
	return g
}

func inRange(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsOccupied reports whether the cell is occupied. Out-of-range cells read as
// unoccupied so footprint checks that straddle the border never fault.
func (g *Grid) IsOccupied(row, col int) bool {
	if !inRange(row, col) {
		return false
	}
	return g.cells[row][col]
}

// SetOccupied writes one cell. Out-of-range writes are silently ignored.
func (g *Grid) SetOccupied(row, col int, occupied bool) {
	if !inRange(row, col) {
		return
	}
	g.cells[row][col] = occupied
}

// ScreenToGrid maps a screen position to the cell containing it. The result
// is unbounded: positions off the board map to out-of-range cells.
func (g *Grid) ScreenToGrid(x, y float64) Cell {
	return Cell{
		Row: int(math.Floor((y - g.offsetY) / g.cellSize)),
		Col: int(math.Floor((x - g.offsetX) / g.cellSize)),
	}
}

// GridToScreen returns the top-left corner of a cell. Inverse of ScreenToGrid
// at cell-aligned inputs.
func (g *Grid) GridToScreen(row, col int) Point {
	return Point{
		X: g.offsetX + float64(col)*g.cellSize,
		Y: g.offsetY + float64(row)*g.cellSize,
	}
}

// SnapToGrid maps a screen position to the center of the nearest board cell.
// Positions off the board clamp to the nearest edge cell, never beyond.
func (g *Grid) SnapToGrid(x, y float64) Point {
	c := g.ScreenToGrid(x, y)
	c.Row = clamp(c.Row, 0, Size-1)
	c.Col = clamp(c.Col, 0, Size-1)
	p := g.GridToScreen(c.Row, c.Col)
	return Point{X: p.X + g.cellSize/2, Y: p.Y + g.cellSize/2}
}

// CanPlaceBlock reports whether a rows x cols footprint anchored at
// (startRow,startCol) lies fully on the board and touches no occupied cell.
func (g *Grid) CanPlaceBlock(startRow, startCol, rows, cols int) bool {
	if startRow < 0 || startCol < 0 || startRow+rows > Size || startCol+cols > Size {
		return false
	}
	for r := startRow; r < startRow+rows; r++ {
		for c := startCol; c < startCol+cols; c++ {
			if g.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// PlaceBlock marks the footprint occupied. It revalidates first and mutates
// nothing on failure.
func (g *Grid) PlaceBlock(startRow, startCol, rows, cols int) bool {
	if !g.CanPlaceBlock(startRow, startCol, rows, cols) {
		g.logger.Debugf("[BOARD] PlaceBlock rejected: at=(%d,%d) size=%dx%d", startRow, startCol, rows, cols)
		return false
	}
	for r := startRow; r < startRow+rows; r++ {
		for c := startCol; c < startCol+cols; c++ {
			g.cells[r][c] = true
		}
	}
	g.logger.Infof("[BOARD] Placed: at=(%d,%d) size=%dx%d", startRow, startCol, rows, cols)
	return true
}

// RemoveBlock clears the footprint unconditionally. Cells outside the board
// are skipped; clearing an already-empty cell is a no-op.
func (g *Grid) RemoveBlock(startRow, startCol, rows, cols int) {
	for r := startRow; r < startRow+rows; r++ {
		for c := startCol; c < startCol+cols; c++ {
			g.SetOccupied(r, c, false)
		}
	}
	g.logger.Debugf("[BOARD] Removed: at=(%d,%d) size=%dx%d", startRow, startCol, rows, cols)
}

// Clear empties the whole board.
func (g *Grid) Clear() {
	g.cells = [Size][Size]bool{}
	g.logger.Infof("[BOARD] Cleared")
}

// State returns a copy of the occupancy matrix.
func (g *Grid) State() [Size][Size]bool {
	return g.cells
}

/* ─── geometry accessors (read-only, for the renderer) ─── */

func (g *Grid) CellSize() float64     { return g.cellSize }
func (g *Grid) OffsetX() float64      { return g.offsetX }
func (g *Grid) OffsetY() float64      { return g.offsetY }
func (g *Grid) PixelWidth() float64   { return g.cellSize * Size }
func (g *Grid) ScreenWidth() float64  { return g.screenW }
func (g *Grid) ScreenHeight() float64 { return g.screenH }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
