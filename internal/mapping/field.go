package mapping

import (
	"github.com/fchimpan/kusa-blocks/internal/game"
)

type Cell struct {
	Filled bool
	// Active marks cells of the falling piece; Kind is only meaningful then.
	// Locked cells carry no identity.
	Active bool
	Kind   game.Kind
}

// FieldGrid is a display grid ordered top row first.
type FieldGrid struct {
	Rows  int
	Cols  int
	Cells [][]Cell // [row][col]
}

// BuildFieldGrid projects a snapshot onto the visible playfield.
//
// Display row 0 is board row VisibleHeight-1; the two buffer rows are not shown,
// so active cells inside them are dropped.
func BuildFieldGrid(s game.Snapshot) FieldGrid {
	rows, cols := game.VisibleHeight, game.Width
	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
		boardRow := rows - 1 - r
		for c := 0; c < cols; c++ {
			cells[r][c].Filled = s.Board[boardRow][c]
		}
	}

	if s.Active != nil {
		for _, bc := range s.Active.Cells {
			if bc.Row < 0 || bc.Row >= rows || bc.Col < 0 || bc.Col >= cols {
				continue
			}
			r := rows - 1 - bc.Row
			cells[r][bc.Col] = Cell{Filled: true, Active: true, Kind: s.Active.Kind}
		}
	}

	return FieldGrid{Rows: rows, Cols: cols, Cells: cells}
}

// BuildPreviewGrid draws kind in its spawn rotation, trimmed to the filled
// bounding box.
func BuildPreviewGrid(kind game.Kind) FieldGrid {
	mask := game.ShapeMask(kind, 0)
	minX, minY, maxX, maxY := game.MaskSize, game.MaskSize, -1, -1
	for _, o := range mask.Offsets() {
		minX, maxX = min(minX, o.DX), max(maxX, o.DX)
		minY, maxY = min(minY, o.DY), max(maxY, o.DY)
	}
	if maxX < 0 {
		return FieldGrid{}
	}

	rows, cols := maxY-minY+1, maxX-minX+1
	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
		dy := maxY - r
		for c := 0; c < cols; c++ {
			if mask.Has(minX+c, dy) {
				cells[r][c] = Cell{Filled: true, Active: true, Kind: kind}
			}
		}
	}
	return FieldGrid{Rows: rows, Cols: cols, Cells: cells}
}
