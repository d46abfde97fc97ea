package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanMove_ChecksBothAxesTogether(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	require.NoError(t, b.Lock([]Cell{{3, 0}}))
	p := ActivePiece{Kind: KindO, Col: 0, Row: 0} // cells (1..2, 1..2)

	assert.True(t, CanMove(b, p, Offset{DX: 1}))
	assert.True(t, CanMove(b, p, Offset{DY: -1}))
	assert.False(t, CanMove(b, p, Offset{DX: 1, DY: -1}), "diagonal lands on (3,0)")
}

func TestCanMove_WallsAndFloor(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	p := ActivePiece{Kind: KindO, Col: -1, Row: -1} // cells (0..1, 0..1)
	assert.True(t, Fits(b, p))
	assert.False(t, CanMove(b, p, Offset{DX: -1}))
	assert.False(t, CanMove(b, p, Down))
	assert.True(t, CanMove(b, p, Offset{DX: 1}))

	right := ActivePiece{Kind: KindO, Col: Width - 3, Row: 5} // cells (8..9)
	assert.False(t, CanMove(b, right, Offset{DX: 1}))
	assert.True(t, CanMove(b, right, Offset{DX: -1}))
}

func TestCanRotate_OAlwaysRotatesOnBoard(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	for col := 0; col <= Width-MaskSize; col++ {
		for row := 0; row <= Height-MaskSize; row++ {
			for r := 0; r < NumRotations; r++ {
				p := ActivePiece{Kind: KindO, Rotation: r, Col: col, Row: row}
				assert.True(t, CanRotate(b, p, Left))
				assert.True(t, CanRotate(b, p, Right))
			}
		}
	}

	// Surround the O with a full stack: its own cells stay free, so it still rotates.
	p := ActivePiece{Kind: KindO, Col: 3, Row: 5}
	own := map[Cell]bool{}
	for _, c := range p.OccupiedCells() {
		own[c] = true
	}
	var stack []Cell
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			if c := (Cell{col, row}); !own[c] {
				stack = append(stack, c)
			}
		}
	}
	require.NoError(t, b.Lock(stack))
	assert.True(t, CanRotate(b, p, Right))
	assert.True(t, CanRotate(b, p, Left))
}

func TestCanRotate_UsesUnmovedPosition(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	p := ActivePiece{Kind: KindI, Rotation: 1, Col: -1, Row: 5} // column 0
	assert.False(t, CanRotate(b, p, Right), "horizontal I would poke through the left wall")
	assert.True(t, CanRotate(b, p.Translate(1, 0), Right))
}

func TestFindKickOffset_LeftWallPrefersSingleStepRight(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	p := ActivePiece{Kind: KindI, Rotation: 1, Col: -1, Row: 5}
	require.False(t, CanRotate(b, p, Right))

	off, ok := FindKickOffset(b, p, Right)
	require.True(t, ok)
	assert.Equal(t, Offset{DX: 1, DY: 0}, off)
}

func TestFindKickOffset_RightWallFallsBackToDoubleStep(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	p := ActivePiece{Kind: KindI, Rotation: 1, Col: Width - 2, Row: 5} // column 9
	require.False(t, CanRotate(b, p, Right))

	off, ok := FindKickOffset(b, p, Right)
	require.True(t, ok)
	assert.Equal(t, Offset{DX: -2, DY: 0}, off)
}

func TestFindKickOffset_FloorKicksUp(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	p := ActivePiece{Kind: KindI, Rotation: 0, Col: 3, Row: -1} // lying on the floor
	require.False(t, CanRotate(b, p, Right))

	off, ok := FindKickOffset(b, p, Right)
	require.True(t, ok)
	assert.Equal(t, Offset{DX: 0, DY: 1}, off)
}

func TestFindKickOffset_NoCandidateFits(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	p := ActivePiece{Kind: KindI, Rotation: 1, Col: 3, Row: 0} // column 4, rows 0..3
	var walls []Cell
	for row := 0; row < 8; row++ {
		for col := 0; col < Width; col++ {
			if col != 4 {
				walls = append(walls, Cell{col, row})
			}
		}
	}
	require.NoError(t, b.Lock(walls))

	_, ok := FindKickOffset(b, p, Left)
	assert.False(t, ok)
	_, ok = FindKickOffset(b, p, Right)
	assert.False(t, ok)
}

func TestKickOffsets_Order(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Offset{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{2, 0}, {-2, 0}, {0, 2}, {0, -2},
	}, KickOffsets())
}

func TestActivePiece_Rotate(t *testing.T) {
	t.Parallel()

	p := ActivePiece{Kind: KindT}
	assert.Equal(t, 3, p.Rotate(Left).Rotation)
	assert.Equal(t, 1, p.Rotate(Right).Rotation)
	assert.Equal(t, 0, p.Rotate(Right).Rotate(Right).Rotate(Right).Rotate(Right).Rotation)

	moved := p.Translate(2, -3)
	assert.Equal(t, 2, moved.Col)
	assert.Equal(t, -3, moved.Row)
	assert.Equal(t, 0, p.Col, "value receiver leaves the original alone")
}
