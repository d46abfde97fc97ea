package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeMask_EveryRotationHasFourCells(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		for r := 0; r < NumRotations; r++ {
			assert.Equal(t, 4, ShapeMask(k, r).Len(), "kind %s rotation %d", k, r)
		}
	}
}

func TestShapeMask_OIsRotationInvariant(t *testing.T) {
	t.Parallel()

	want := ShapeMask(KindO, 0)
	for r := 1; r < NumRotations; r++ {
		assert.Equal(t, want, ShapeMask(KindO, r))
	}
}

func TestShapeMask_Layout(t *testing.T) {
	t.Parallel()

	vertical := ShapeMask(KindI, 1)
	for dy := 0; dy < MaskSize; dy++ {
		assert.True(t, vertical.Has(1, dy))
		assert.False(t, vertical.Has(0, dy))
	}

	horizontal := ShapeMask(KindI, 0)
	assert.Equal(t, []Offset{{0, 1}, {1, 1}, {2, 1}, {3, 1}}, horizontal.Offsets())

	o := ShapeMask(KindO, 0).Grid()
	assert.True(t, o[1][1])
	assert.True(t, o[2][2])
	assert.False(t, o[0][0])
	assert.False(t, o[3][3])
}

func TestShapeMask_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { ShapeMask(Kind(NumKinds), 0) })
	require.Panics(t, func() { ShapeMask(KindT, -1) })
	require.Panics(t, func() { ShapeMask(KindT, NumRotations) })
}

func TestDisplayColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#4dffff", DisplayColor(KindI).Hex())
	assert.Equal(t, "#ffa800", DisplayColor(KindL).Hex())
	assert.Equal(t, "#ffff4d", DisplayColor(KindO).Hex())

	seen := map[string]Kind{}
	for _, k := range Kinds() {
		hex := DisplayColor(k).Hex()
		prev, dup := seen[hex]
		assert.False(t, dup, "%s shares colour with %s", k, prev)
		seen[hex] = k
	}

	require.Panics(t, func() { DisplayColor(Kind(42)) })
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "T", KindT.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
