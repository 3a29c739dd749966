package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/blockdropgame/blockdrop/core/block"
	"github.com/blockdropgame/blockdrop/core/board"
	"github.com/blockdropgame/blockdrop/core/drag"
	game_log "github.com/blockdropgame/blockdrop/internal/log"
)

// paletteShapes are the spawnable block sizes, in cells.
var paletteShapes = []struct{ Cols, Rows int }{
	{1, 1}, {2, 1}, {2, 2}, {3, 1},
}

// footprint records the cells a committed block occupies so picking it back
// up can free them.
type footprint struct {
	row, col   int
	rows, cols int
}

type Game struct {
	/* subsystems */
	grid   *board.Grid
	ctrl   *drag.Controller
	logger *game_log.Logger

	/* hud */
	clearBtn *Button

	/* palette + placement bookkeeping */
	homes   []block.Block     // palette spawn blocks, one per shape
	placed  map[int]footprint // collection index -> committed footprint
	restore *footprint        // footprint to re-commit if the pick-up is cancelled

	/* input state */
	leftPrev bool
	feasible bool
}

func New(screenW, screenH float64, logger *game_log.Logger) *Game {
	grid := board.New(screenW, screenH, logger)
	g := &Game{
		grid:   grid,
		ctrl:   drag.New(logger),
		logger: logger,
		placed: map[int]footprint{},
	}
	g.ctrl.AttachGrid(grid)
	g.clearBtn = NewButton("CLEAR", g.reset)
	g.clearBtn.SetRect(image.Rect(8, 8, 72, 32))
	g.spawnPalette()
	return g
}

// spawnPalette lays the spawn row out under the board, tops aligned, one
// block per shape.
func (g *Game) spawnPalette() {
	cell := g.grid.CellSize()
	y := g.grid.OffsetY() + g.grid.PixelWidth() + cell/2
	x := g.grid.OffsetX()
	g.homes = g.homes[:0]
	for _, s := range paletteShapes {
		b := block.New(x, y, float64(s.Cols)*cell, float64(s.Rows)*cell)
		g.homes = append(g.homes, b)
		g.ctrl.AddBlock(b)
		x += b.W + cell/2
	}
}

func (g *Game) reset() {
	g.logger.Infof("[GAME] Reset")
	g.grid.Clear()
	g.ctrl.ClearBlocks()
	g.placed = map[int]footprint{}
	g.restore = nil
	g.spawnPalette()
}

/* ─── game loop ─── */

func (g *Game) Update() error {
	mx, my := cursorPosition()
	left := isMouseButtonPressed(ebiten.MouseButtonLeft)

	if g.clearBtn.Handle(mx, my, left) {
		g.leftPrev = left
		return nil
	}

	x, y := float64(mx), float64(my)
	switch {
	case left && !g.leftPrev:
		g.startDrag(x, y)
	case left && g.ctrl.IsDragging():
		g.ctrl.UpdateDrag(x, y)
	case !left && g.leftPrev && g.ctrl.IsDragging():
		g.finishDrag()
	}
	g.feasible = g.ctrl.CanPlaceCurrent()
	if pos, ok := g.ctrl.Position(); ok && !g.onBoard(pos) {
		g.feasible = false // snapping clamps, but the drop itself would cancel
	}
	g.leftPrev = left
	return nil
}

// startDrag forwards the press to the controller. Picking up a committed
// block frees its cells; they are restored if the gesture is cancelled.
func (g *Game) startDrag(x, y float64) {
	if !g.ctrl.StartDrag(x, y) {
		return
	}
	g.restore = nil
	idx, _ := g.ctrl.DraggedIndex()
	if fp, ok := g.placed[idx]; ok {
		g.grid.RemoveBlock(fp.row, fp.col, fp.rows, fp.cols)
		delete(g.placed, idx)
		g.restore = &fp
	}
}

// onBoard reports whether a screen position lies over the board. Snapping
// clamps to the board edge, so the raw cell is the signal for an off-board
// drop.
func (g *Game) onBoard(p board.Point) bool {
	c := g.grid.ScreenToGrid(p.X, p.Y)
	return c.Row >= 0 && c.Row < board.Size && c.Col >= 0 && c.Col < board.Size
}

// finishDrag commits the drop when it lands on the board and fits, otherwise
// cancels and re-commits the block's previous footprint if it had one.
func (g *Game) finishDrag() {
	idx, _ := g.ctrl.DraggedIndex()
	origin := g.ctrl.Blocks()[idx]
	cell, rows, cols, _ := g.ctrl.PlannedPlacement()
	pos, _ := g.ctrl.Position()

	if g.onBoard(pos) && g.ctrl.PlaceCurrent() {
		g.placed[idx] = footprint{row: cell.Row, col: cell.Col, rows: rows, cols: cols}
		g.restore = nil
		g.ctrl.EndDrag()
		g.respawn(origin)
		return
	}

	g.ctrl.CancelDrag()
	if g.restore != nil {
		g.grid.PlaceBlock(g.restore.row, g.restore.col, g.restore.rows, g.restore.cols)
		g.placed[idx] = *g.restore
		g.restore = nil
	}
}

// respawn refills the palette slot the placed block came from. Blocks moved
// from board to board match no home and spawn nothing.
func (g *Game) respawn(origin block.Block) {
	for _, home := range g.homes {
		if origin == home {
			g.ctrl.AddBlock(home)
			return
		}
	}
}

/* ─── rendering ─── */

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBG)

	cell := g.grid.CellSize()
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			p := g.grid.GridToScreen(r, c)
			if g.grid.IsOccupied(r, c) {
				drawRect(screen, p.X, p.Y, cell, cell, colCellFill, true)
			}
			drawRect(screen, p.X, p.Y, cell, cell, colGridLine, false)
		}
	}

	dragIdx := -1
	if i, ok := g.ctrl.DraggedIndex(); ok {
		dragIdx = i
	}
	for i, b := range g.ctrl.Blocks() {
		if i == dragIdx {
			continue // drawn last, following the pointer
		}
		drawRect(screen, b.X, b.Y, b.W, b.H, colBlock, true)
	}

	if sh, ok := g.ctrl.Shadow(); ok {
		c := colShadowBad
		if g.feasible {
			c = colShadowOK
		}
		drawRect(screen, sh.X, sh.Y, sh.W, sh.H, c, true)
	}
	if b, ok := g.ctrl.Dragged(); ok {
		drawRect(screen, b.X, b.Y, b.W, b.H, colBlockDrag, true)
	}

	g.clearBtn.Draw(screen)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("placed: %d", len(g.placed)), 8, 40)
}

func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	return int(g.grid.ScreenWidth()), int(g.grid.ScreenHeight())
}
