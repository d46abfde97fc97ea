package game

// Classic layout: 10 columns, 20 visible rows plus 2 hidden buffer rows.
const (
	Width         = 10
	Height        = 22
	VisibleHeight = 20
)

// Cell is a board coordinate. Row 0 is the floor.
type Cell struct {
	Col int
	Row int
}

// Board is the occupancy grid. Filled cells carry no piece identity.
type Board struct {
	cells [Height][Width]bool // [row][col]
}

func NewBoard() *Board {
	return &Board{}
}

// IsOccupied treats the side walls and everything below the floor as solid.
// Rows above the stored grid are open sky.
func (b *Board) IsOccupied(col, row int) bool {
	if col < 0 || col >= Width || row < 0 {
		return true
	}
	if row >= Height {
		return false
	}
	return b.cells[row][col]
}

// Lock marks cells occupied. Every cell is validated first, so an
// out-of-range cell leaves the board unchanged.
func (b *Board) Lock(cells []Cell) error {
	for _, c := range cells {
		if c.Col < 0 || c.Col >= Width || c.Row < 0 || c.Row >= Height {
			return &OutOfBoundsError{Cell: c}
		}
	}
	for _, c := range cells {
		b.cells[c.Row][c.Col] = true
	}
	return nil
}

// ClearFullLines removes every full row and returns the removed row indices
// in scan order (top-down, starting at the highest row below the buffer).
//
// Because removal only shifts rows that were already scanned, each index is
// valid both before and after the clear and no full row can be skipped.
func (b *Board) ClearFullLines() []int {
	var removed []int
	for row := VisibleHeight; row >= 0; row-- {
		if !b.rowFull(row) {
			continue
		}
		b.removeRow(row)
		removed = append(removed, row)
	}
	return removed
}

func (b *Board) rowFull(row int) bool {
	for col := 0; col < Width; col++ {
		if !b.cells[row][col] {
			return false
		}
	}
	return true
}

func (b *Board) removeRow(row int) {
	copy(b.cells[row:], b.cells[row+1:])
	b.cells[Height-1] = [Width]bool{}
}

// IsGameOver reports whether any buffer row is occupied.
func (b *Board) IsGameOver() bool {
	for row := VisibleHeight; row < Height; row++ {
		for col := 0; col < Width; col++ {
			if b.cells[row][col] {
				return true
			}
		}
	}
	return false
}

func (b *Board) Reset() {
	b.cells = [Height][Width]bool{}
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for row := range b.cells {
		for col := range b.cells[row] {
			if b.cells[row][col] {
				n++
			}
		}
	}
	return n
}

// Grid returns a copy of the occupancy grid indexed [row][col].
func (b *Board) Grid() [Height][Width]bool {
	return b.cells
}
