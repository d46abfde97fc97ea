package game

// Occupancy is what collision checks need from a board.
type Occupancy interface {
	IsOccupied(col, row int) bool
}

// Down is one row of gravity.
var Down = Offset{DX: 0, DY: -1}

// kickOffsets is the wall-kick search order: single-unit kicks before
// double-unit ones, horizontal before vertical at each magnitude.
var kickOffsets = [...]Offset{
	{DX: 1, DY: 0}, {DX: -1, DY: 0},
	{DX: 0, DY: 1}, {DX: 0, DY: -1},
	{DX: 2, DY: 0}, {DX: -2, DY: 0},
	{DX: 0, DY: 2}, {DX: 0, DY: -2},
}

// KickOffsets returns the wall-kick candidates in search order.
func KickOffsets() []Offset {
	out := make([]Offset, len(kickOffsets))
	copy(out, kickOffsets[:])
	return out
}

func fits(occ Occupancy, mask Mask, col, row int) bool {
	for dy := 0; dy < MaskSize; dy++ {
		for dx := 0; dx < MaskSize; dx++ {
			if mask.Has(dx, dy) && occ.IsOccupied(col+dx, row+dy) {
				return false
			}
		}
	}
	return true
}

// Fits reports whether every filled cell of p is free.
func Fits(occ Occupancy, p ActivePiece) bool {
	return fits(occ, p.Mask(), p.Col, p.Row)
}

// CanMove checks the whole piece at p+delta; both axes are applied together.
func CanMove(occ Occupancy, p ActivePiece, delta Offset) bool {
	return fits(occ, p.Mask(), p.Col+delta.DX, p.Row+delta.DY)
}

// CanRotate checks the rotated mask at the current, unmoved position.
func CanRotate(occ Occupancy, p ActivePiece, d Direction) bool {
	return fits(occ, ShapeMask(p.Kind, rotated(p.Rotation, d)), p.Col, p.Row)
}

// FindKickOffset returns the first kick for which the rotated piece fits.
// ok is false when no candidate fits and the rotation must be rejected.
func FindKickOffset(occ Occupancy, p ActivePiece, d Direction) (off Offset, ok bool) {
	mask := ShapeMask(p.Kind, rotated(p.Rotation, d))
	for _, k := range kickOffsets {
		if fits(occ, mask, p.Col+k.DX, p.Row+k.DY) {
			return k, true
		}
	}
	return Offset{}, false
}
