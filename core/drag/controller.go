package drag

import (
	"math"

	"github.com/blockdropgame/blockdrop/core/block"
	"github.com/blockdropgame/blockdrop/core/board"
	game_log "github.com/blockdropgame/blockdrop/internal/log"
)

// session holds the state of one active drag. All fields are set together on
// pick-up and dropped together on end/cancel; a nil session means idle, so
// the controller can never represent a half-open gesture.
type session struct {
	pos    board.Point // last pointer sample
	blk    block.Block // dragged copy, follows the pointer
	idx    int         // index of the block in the collection
	shadow block.Shadow
}

// Controller drives a single drag gesture over an ordered block collection.
// Collection order is z-order: the last block is topmost for hit-testing.
// The attached board is optional; without one, previews follow the raw
// pointer and placement always reports false.
type Controller struct {
	blocks []block.Block
	grid   *board.Grid
	sess   *session
	logger *game_log.Logger
}

func New(logger *game_log.Logger) *Controller {
	return &Controller{logger: logger}
}

// AttachGrid sets the board used for shadow snapping and placement.
func (c *Controller) AttachGrid(g *board.Grid) {
	c.grid = g
}

/* ─── collection management ─── */

func (c *Controller) AddBlock(b block.Block) {
	c.blocks = append(c.blocks, b)
	c.logger.Debugf("[DRAG] AddBlock: at=(%g,%g) size=%gx%g n=%d", b.X, b.Y, b.W, b.H, len(c.blocks))
}

// RemoveBlock deletes the block at index i. Ignored while a drag is active:
// the session records a collection index, and shifting entries under it would
// write the drop back into the wrong slot.
func (c *Controller) RemoveBlock(i int) {
	if c.sess != nil {
		c.logger.Warnf("[DRAG] RemoveBlock ignored during active drag: i=%d", i)
		return
	}
	if i < 0 || i >= len(c.blocks) {
		return
	}
	c.blocks = append(c.blocks[:i], c.blocks[i+1:]...)
}

// ClearBlocks empties the collection, cancelling any active drag first.
func (c *Controller) ClearBlocks() {
	if c.sess != nil {
		c.CancelDrag()
	}
	c.blocks = nil
}

// Blocks returns a copy of the collection in z-order (last = topmost).
func (c *Controller) Blocks() []block.Block {
	out := make([]block.Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

/* ─── session accessors ─── */

func (c *Controller) IsDragging() bool { return c.sess != nil }

// Dragged returns the block currently following the pointer.
func (c *Controller) Dragged() (block.Block, bool) {
	if c.sess == nil {
		return block.Block{}, false
	}
	return c.sess.blk, true
}

// DraggedIndex returns the collection index recorded at pick-up.
func (c *Controller) DraggedIndex() (int, bool) {
	if c.sess == nil {
		return 0, false
	}
	return c.sess.idx, true
}

func (c *Controller) Shadow() (block.Shadow, bool) {
	if c.sess == nil {
		return block.Shadow{}, false
	}
	return c.sess.shadow, true
}

// Position returns the last pointer sample of the active drag.
func (c *Controller) Position() (board.Point, bool) {
	if c.sess == nil {
		return board.Point{}, false
	}
	return c.sess.pos, true
}

/* ─── gesture lifecycle ─── */

// StartDrag hit-tests the collection topmost-first and picks up the first
// block containing (x,y), re-centering it on the pointer. Reports whether a
// drag began; a miss leaves the controller idle. The stored collection entry
// is not touched until EndDrag or PlaceCurrent writes back.
func (c *Controller) StartDrag(x, y float64) bool {
	if c.sess != nil {
		c.logger.Warnf("[DRAG] StartDrag ignored: session already active")
		return false
	}
	for i := len(c.blocks) - 1; i >= 0; i-- {
		if !c.blocks[i].Contains(x, y) {
			continue
		}
		c.sess = &session{
			pos: board.Point{X: x, Y: y},
			blk: c.blocks[i].CenteredAt(x, y),
			idx: i,
		}
		c.updateShadow()
		c.logger.Debugf("[DRAG] StartDrag: hit i=%d at=(%g,%g)", i, x, y)
		return true
	}
	c.logger.Debugf("[DRAG] StartDrag: miss at=(%g,%g)", x, y)
	return false
}

// UpdateDrag follows the pointer to a new sample. No-op while idle.
func (c *Controller) UpdateDrag(x, y float64) {
	if c.sess == nil {
		return
	}
	c.sess.pos = board.Point{X: x, Y: y}
	c.sess.blk = c.sess.blk.CenteredAt(x, y)
	c.updateShadow()
}

// updateShadow recomputes the preview from the dragged block's current
// footprint. With a board attached the source position snaps to the nearest
// cell center first; without one the raw position is used.
func (c *Controller) updateShadow() {
	b := c.sess.blk
	if c.grid != nil {
		center := c.grid.SnapToGrid(b.CenterX(), b.CenterY())
		b = b.CenteredAt(center.X, center.Y)
	}
	c.sess.shadow = block.For(b)
}

// EndDrag closes the session, writing the dragged block's current position
// back into the collection at its recorded index.
func (c *Controller) EndDrag() {
	if c.sess == nil {
		return
	}
	c.blocks[c.sess.idx] = c.sess.blk
	c.logger.Debugf("[DRAG] EndDrag: i=%d at=(%g,%g)", c.sess.idx, c.sess.blk.X, c.sess.blk.Y)
	c.sess = nil
}

// CancelDrag closes the session without writing back; the collection entry
// keeps its pre-drag position. A placement already committed by PlaceCurrent
// stays committed.
func (c *Controller) CancelDrag() {
	if c.sess == nil {
		return
	}
	c.logger.Debugf("[DRAG] CancelDrag: i=%d", c.sess.idx)
	c.sess = nil
}

/* ─── placement ─── */

// snapped derives the board-aligned drop for the dragged block: the cell
// anchoring its footprint, the footprint size in cells, and the snapped
// top-left in screen space.
func (c *Controller) snapped() (cell board.Cell, rows, cols int, topLeft board.Point, ok bool) {
	if c.sess == nil || c.grid == nil {
		return board.Cell{}, 0, 0, board.Point{}, false
	}
	b := c.sess.blk
	center := c.grid.SnapToGrid(b.CenterX(), b.CenterY())
	topLeft = board.Point{X: center.X - b.W/2, Y: center.Y - b.H/2}
	cell = c.grid.ScreenToGrid(topLeft.X, topLeft.Y)
	rows = int(math.Round(b.H / c.grid.CellSize()))
	cols = int(math.Round(b.W / c.grid.CellSize()))
	if rows < 1 || cols < 1 {
		// blocks under half a cell round to an empty footprint; placing one
		// would occupy nothing, so treat it as unplaceable
		return board.Cell{}, 0, 0, board.Point{}, false
	}
	return cell, rows, cols, topLeft, true
}

// PlannedPlacement returns the footprint the dragged block would commit to:
// anchor cell plus size in cells. False while idle or without an attached
// board.
func (c *Controller) PlannedPlacement() (cell board.Cell, rows, cols int, ok bool) {
	cell, rows, cols, _, ok = c.snapped()
	return cell, rows, cols, ok
}

// CanPlaceCurrent reports whether the dragged block would fit at its snapped
// position. False while idle or without an attached board.
func (c *Controller) CanPlaceCurrent() bool {
	cell, rows, cols, _, ok := c.snapped()
	if !ok {
		return false
	}
	return c.grid.CanPlaceBlock(cell.Row, cell.Col, rows, cols)
}

// PlaceCurrent commits the dragged block at its snapped position: marks the
// board footprint occupied and writes the snapped top-left into both the
// session and the collection. The session stays open; pair with EndDrag or
// CancelDrag. The write-back is a commit; cancelling afterwards does not
// undo it.
func (c *Controller) PlaceCurrent() bool {
	cell, rows, cols, topLeft, ok := c.snapped()
	if !ok {
		return false
	}
	if !c.grid.PlaceBlock(cell.Row, cell.Col, rows, cols) {
		c.logger.Debugf("[DRAG] PlaceCurrent rejected: cell=(%d,%d) size=%dx%d", cell.Row, cell.Col, rows, cols)
		return false
	}
	c.sess.blk = c.sess.blk.WithPosition(topLeft.X, topLeft.Y)
	c.blocks[c.sess.idx] = c.sess.blk
	c.logger.Infof("[DRAG] PlaceCurrent: i=%d cell=(%d,%d) size=%dx%d", c.sess.idx, cell.Row, cell.Col, rows, cols)
	return true
}
