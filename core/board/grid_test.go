package board

import (
	"os"
	"testing"

	game_log "github.com/blockdropgame/blockdrop/internal/log"
)

var testLogger *game_log.Logger

func init() {
	testLogger = game_log.New(os.Stdout, game_log.LevelNone)
}

func TestDerivedGeometry(t *testing.T) {
	g := New(400, 800, testLogger)
	if g.CellSize() != 32.0 {
		t.Fatalf("cellSize=%g want 32", g.CellSize())
	}
	if g.OffsetX() != 40.0 {
		t.Fatalf("offsetX=%g want 40", g.OffsetX())
	}
	// vertical centering of the 320px board in 800px: (800-320)/2
	if g.OffsetY() != 240.0 {
		t.Fatalf("offsetY=%g want 240", g.OffsetY())
	}
	if g.PixelWidth() != 320.0 {
		t.Fatalf("pixelWidth=%g want 320", g.PixelWidth())
	}
}

func TestNegativeOffsetYAllowed(t *testing.T) {
	// screenH smaller than the board: vertical centering goes negative.
	g := New(400, 200, testLogger)
	if g.OffsetY() != -60.0 {
		t.Fatalf("offsetY=%g want -60", g.OffsetY())
	}
}

func TestNewPanicsOnBadScreen(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for zero screen width")
		}
	}()
	New(0, 800, testLogger)
}

func TestScreenGridRoundTrip(t *testing.T) {
	g := New(400, 800, testLogger)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := g.GridToScreen(row, col)
			c := g.ScreenToGrid(p.X, p.Y)
			if c.Row != row || c.Col != col {
				t.Fatalf("round trip (%d,%d) -> (%g,%g) -> (%d,%d)", row, col, p.X, p.Y, c.Row, c.Col)
			}
		}
	}
}

func TestScreenToGridUnbounded(t *testing.T) {
	g := New(400, 800, testLogger)
	if c := g.ScreenToGrid(0, 0); c.Row >= 0 || c.Col >= 0 {
		t.Fatalf("expected negative cell above/left of board, got (%d,%d)", c.Row, c.Col)
	}
	if c := g.ScreenToGrid(399, 799); c.Row < Size || c.Col < Size {
		t.Fatalf("expected cell past the board, got (%d,%d)", c.Row, c.Col)
	}
}

func TestOutOfBoundsSafety(t *testing.T) {
	g := New(400, 800, testLogger)
	coords := []int{-1, -1000000000, Size, 1000000000}
	for _, r := range coords {
		for _, c := range coords {
			if g.IsOccupied(r, c) {
				t.Fatalf("IsOccupied(%d,%d)=true want false", r, c)
			}
			g.SetOccupied(r, c, true) // must not fault or leak into the matrix
		}
	}
	if g.State() != ([Size][Size]bool{}) {
		t.Fatalf("out-of-range writes mutated the matrix")
	}
}

func TestSnapToCellCenter(t *testing.T) {
	g := New(400, 800, testLogger)
	// anywhere inside cell (3,4) snaps to its center
	p := g.SnapToGrid(170.0, 340.0)
	if p.X != 184.0 || p.Y != 352.0 {
		t.Fatalf("snap=(%g,%g) want (184,352)", p.X, p.Y)
	}
}

func TestSnapClamping(t *testing.T) {
	g := New(400, 800, testLogger)
	cases := []struct {
		x, y         float64
		wantX, wantY float64
	}{
		{-1000, -1000, 56, 256},  // top-left cell center
		{10000, 10000, 344, 544}, // bottom-right cell center
		{-1000, 10000, 56, 544},  // clamped per axis independently
		{200, -50, 216, 256},     // x inside col 5, y above the board
	}
	for _, tc := range cases {
		p := g.SnapToGrid(tc.x, tc.y)
		if p.X != tc.wantX || p.Y != tc.wantY {
			t.Fatalf("snap(%g,%g)=(%g,%g) want (%g,%g)", tc.x, tc.y, p.X, p.Y, tc.wantX, tc.wantY)
		}
	}
}

func TestCanPlaceBlockBounds(t *testing.T) {
	g := New(400, 800, testLogger)
	if !g.CanPlaceBlock(8, 8, 2, 2) {
		t.Fatalf("2x2 at (8,8) should fit")
	}
	if g.CanPlaceBlock(9, 9, 2, 2) {
		t.Fatalf("2x2 at (9,9) extends past the boundary")
	}
	if g.CanPlaceBlock(-1, 0, 1, 1) || g.CanPlaceBlock(0, -1, 1, 1) {
		t.Fatalf("negative anchors must be rejected")
	}
}

func TestPlaceBlockAtomicity(t *testing.T) {
	g := New(400, 800, testLogger)
	g.SetOccupied(2, 3, true)
	before := g.State()
	if g.PlaceBlock(1, 2, 3, 3) {
		t.Fatalf("placement over an occupied cell must fail")
	}
	if g.State() != before {
		t.Fatalf("failed placement mutated the matrix")
	}
}

func TestPlaceRemoveNoOverlap(t *testing.T) {
	g := New(400, 800, testLogger)
	if !g.PlaceBlock(0, 0, 2, 2) {
		t.Fatalf("first placement should succeed")
	}
	if g.PlaceBlock(1, 1, 2, 2) {
		t.Fatalf("overlapping placement should fail")
	}
	g.RemoveBlock(0, 0, 2, 2)
	if !g.PlaceBlock(1, 1, 2, 2) {
		t.Fatalf("placement after removal should succeed")
	}
}

func TestRemoveBlockUnconditional(t *testing.T) {
	g := New(400, 800, testLogger)
	// straddles the top-left corner; out-of-range cells are skipped
	g.RemoveBlock(-1, -1, 3, 3)
	g.PlaceBlock(0, 0, 2, 2)
	g.RemoveBlock(0, 0, 2, 2)
	g.RemoveBlock(0, 0, 2, 2) // idempotent
	if g.State() != ([Size][Size]bool{}) {
		t.Fatalf("remove left cells occupied")
	}
}

func TestClear(t *testing.T) {
	g := New(400, 800, testLogger)
	g.PlaceBlock(0, 0, 2, 2)
	g.PlaceBlock(5, 5, 3, 3)
	g.Clear()
	if g.State() != ([Size][Size]bool{}) {
		t.Fatalf("clear left cells occupied")
	}
}

func TestStateIsDefensiveCopy(t *testing.T) {
	g := New(400, 800, testLogger)
	s := g.State()
	s[4][4] = true
	if g.IsOccupied(4, 4) {
		t.Fatalf("mutating the returned state leaked into the grid")
	}
}
