package game

// Direction selects a rotation direction.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Offset is a translation in board units; DY > 0 moves up.
type Offset struct {
	DX int
	DY int
}

// Fixed spawn coordinate of the mask origin.
const (
	SpawnCol = 3
	SpawnRow = Height - 3
)

// ActivePiece is the falling piece. Col/Row locate the mask origin (its
// bottom-left corner), which need not be a filled cell.
//
// Methods never validate; they describe the piece as if the move happened.
type ActivePiece struct {
	Kind     Kind
	Rotation int
	Col      int
	Row      int
}

// Spawn places kind at the spawn coordinate in rotation 0.
func Spawn(kind Kind) ActivePiece {
	mustKind(kind)
	return ActivePiece{Kind: kind, Col: SpawnCol, Row: SpawnRow}
}

func (p ActivePiece) Translate(dx, dy int) ActivePiece {
	p.Col += dx
	p.Row += dy
	return p
}

func (p ActivePiece) Rotate(d Direction) ActivePiece {
	p.Rotation = rotated(p.Rotation, d)
	return p
}

func rotated(rotation int, d Direction) int {
	if d == Left {
		return (rotation + NumRotations - 1) % NumRotations
	}
	return (rotation + 1) % NumRotations
}

func (p ActivePiece) Mask() Mask {
	return ShapeMask(p.Kind, p.Rotation)
}

// OccupiedCells applies the current mask at the current position.
func (p ActivePiece) OccupiedCells() []Cell {
	offs := p.Mask().Offsets()
	cells := make([]Cell, len(offs))
	for i, o := range offs {
		cells[i] = Cell{Col: p.Col + o.DX, Row: p.Row + o.DY}
	}
	return cells
}
