package game

import (
	"fmt"
	"math/bits"
)

// Kind is one of the seven piece shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindL
	KindJ
	KindS
	KindZ
	KindT
	KindO
)

// NumKinds is the number of piece kinds (and the size of one bag cycle).
const NumKinds = 7

// NumRotations is the number of rotation states per kind.
const NumRotations = 4

// MaskSize is the edge length of a piece mask.
const MaskSize = 4

var kindNames = [NumKinds]string{"I", "L", "J", "S", "Z", "T", "O"}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

func (k Kind) Valid() bool { return k < NumKinds }

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, NumKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Mask is a 4x4 occupancy mask. Bit dy*4+dx is set when local cell (dx, dy) is filled;
// dx grows to the right and dy grows upward from the mask origin.
type Mask uint16

func (m Mask) Has(dx, dy int) bool {
	if dx < 0 || dx >= MaskSize || dy < 0 || dy >= MaskSize {
		return false
	}
	return m&(1<<(dy*MaskSize+dx)) != 0
}

// Len returns the number of filled cells.
func (m Mask) Len() int { return bits.OnesCount16(uint16(m)) }

// Offsets returns the filled local cells ordered by dy, then dx.
func (m Mask) Offsets() []Offset {
	out := make([]Offset, 0, m.Len())
	for dy := 0; dy < MaskSize; dy++ {
		for dx := 0; dx < MaskSize; dx++ {
			if m.Has(dx, dy) {
				out = append(out, Offset{DX: dx, DY: dy})
			}
		}
	}
	return out
}

// Grid returns the mask as booleans indexed [dy][dx].
func (m Mask) Grid() [MaskSize][MaskSize]bool {
	var g [MaskSize][MaskSize]bool
	for dy := 0; dy < MaskSize; dy++ {
		for dx := 0; dx < MaskSize; dx++ {
			g[dy][dx] = m.Has(dx, dy)
		}
	}
	return g
}

// shapeArt draws every rotation top row first, so the last string is dy == 0.
// Rotations advance clockwise: 0 -> 1 -> 2 -> 3 -> 0.
var shapeArt = [NumKinds][NumRotations][MaskSize]string{
	KindI: {
		{"....", "....", "####", "...."},
		{".#..", ".#..", ".#..", ".#.."},
		{"....", "####", "....", "...."},
		{"..#.", "..#.", "..#.", "..#."},
	},
	KindL: {
		{"....", "...#", ".###", "...."},
		{"....", "..#.", "..#.", "..##"},
		{"....", "....", ".###", ".#.."},
		{"....", ".##.", "..#.", "..#."},
	},
	KindJ: {
		{"....", ".#..", ".###", "...."},
		{"....", "..##", "..#.", "..#."},
		{"....", "....", ".###", "...#"},
		{"....", "..#.", "..#.", ".##."},
	},
	KindS: {
		{"....", "..##", ".##.", "...."},
		{"....", "..#.", "..##", "...#"},
		{"....", "....", "..##", ".##."},
		{"....", ".#..", ".##.", "..#."},
	},
	KindZ: {
		{"....", ".##.", "..##", "...."},
		{"....", "...#", "..##", "..#."},
		{"....", "....", ".##.", "..##"},
		{"....", "..#.", ".##.", ".#.."},
	},
	KindT: {
		{"....", "..#.", ".###", "...."},
		{"....", "..#.", "..##", "..#."},
		{"....", "....", ".###", "..#."},
		{"....", "..#.", ".##.", "..#."},
	},
	KindO: {
		{"....", ".##.", ".##.", "...."},
		{"....", ".##.", ".##.", "...."},
		{"....", ".##.", ".##.", "...."},
		{"....", ".##.", ".##.", "...."},
	},
}

var catalog = buildCatalog()

func buildCatalog() [NumKinds][NumRotations]Mask {
	var c [NumKinds][NumRotations]Mask
	for k := range shapeArt {
		for r := range shapeArt[k] {
			c[k][r] = parseMask(shapeArt[k][r])
		}
	}
	return c
}

func parseMask(rows [MaskSize]string) Mask {
	var m Mask
	for i, row := range rows {
		dy := MaskSize - 1 - i
		for dx, ch := range row {
			if ch == '#' {
				m |= 1 << (dy*MaskSize + dx)
			}
		}
	}
	return m
}

// ShapeMask returns the mask of kind at the given rotation. It panics with an
// *InvariantError when kind or rotation is out of range.
func ShapeMask(kind Kind, rotation int) Mask {
	mustKind(kind)
	if rotation < 0 || rotation >= NumRotations {
		panic(&InvariantError{Msg: fmt.Sprintf("rotation %d out of range [0,%d]", rotation, NumRotations-1)})
	}
	return catalog[kind][rotation]
}

// Color is an RGB triple in [0,1].
type Color struct {
	R, G, B float64
}

// Hex formats the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

var displayColors = [NumKinds]Color{
	KindI: {R: .3, G: 1, B: 1},   // cyan
	KindL: {R: 1, G: .66, B: 0},  // orange
	KindJ: {R: .2, G: .2, B: 1},  // blue
	KindS: {R: .3, G: 1, B: .3},  // green
	KindZ: {R: 1, G: .3, B: .3},  // red
	KindT: {R: .75, G: .3, B: 1}, // purple
	KindO: {R: 1, G: 1, B: .3},   // yellow
}

// DisplayColor is the canonical colour of a kind. Only renderers use it.
func DisplayColor(kind Kind) Color {
	mustKind(kind)
	return displayColors[kind]
}

func mustKind(kind Kind) {
	if !kind.Valid() {
		panic(&InvariantError{Msg: fmt.Sprintf("piece kind %d out of range", uint8(kind))})
	}
}
