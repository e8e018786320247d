package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestAddWithoutSizesBypassesPicker(t *testing.T) {
	c := New()
	var pk Picker

	pk.RequestAdd(c, gorra())

	assert.False(t, pk.IsOpen())
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Nil(t, lines[0].Size)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestRequestAddWithSizesOpensWithoutMutating(t *testing.T) {
	c := New()
	var pk Picker

	pk.RequestAdd(c, remera())

	assert.True(t, pk.IsOpen())
	assert.True(t, c.IsEmpty())
	assert.Equal(t, "Remera", pk.Product().Name)
}

func TestSelectAddsAndCloses(t *testing.T) {
	c := New()
	var pk Picker

	pk.RequestAdd(c, remera())
	require.NoError(t, pk.Select(c, "S"))

	assert.False(t, pk.IsOpen())
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].Product.ProductID)
	assert.Equal(t, "S", lines[0].SizeName())
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 5000.0, c.Total())
	assert.Equal(t, 1, c.ItemCount())

	// Second add of the same product+size collapses into the same line.
	pk.RequestAdd(c, remera())
	require.NoError(t, pk.Select(c, "S"))

	lines = c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 10000.0, c.Total())
}

func TestSelectMatchesDirectAdd(t *testing.T) {
	direct := New()
	p := remera()
	direct.Add(p, &p.Sizes[0])

	viaPicker := New()
	var pk Picker
	pk.RequestAdd(viaPicker, remera())
	require.NoError(t, pk.Select(viaPicker, "S"))

	assert.Equal(t, direct.Lines(), viaPicker.Lines())
	assert.Equal(t, direct.Total(), viaPicker.Total())
}

func TestCancelLeavesCartUntouched(t *testing.T) {
	c := New()
	var pk Picker

	pk.RequestAdd(c, remera())
	pk.Cancel()

	assert.False(t, pk.IsOpen())
	assert.True(t, c.IsEmpty())
}

func TestSelectUnknownSizeStaysOpen(t *testing.T) {
	c := New()
	var pk Picker

	pk.RequestAdd(c, remera())
	err := pk.Select(c, "XL")

	assert.ErrorIs(t, err, ErrUnknownSize)
	assert.True(t, pk.IsOpen())
	assert.True(t, c.IsEmpty())
}

func TestSelectWhenClosedFails(t *testing.T) {
	c := New()
	var pk Picker

	err := pk.Select(c, "S")

	assert.ErrorIs(t, err, ErrNoSelectionOpen)
	assert.True(t, c.IsEmpty())
}

func TestReopeningDiscardsPriorContext(t *testing.T) {
	c := New()
	var pk Picker

	pk.RequestAdd(c, remera())

	other := remera()
	other.ProductID = 9
	other.Name = "Buzo"
	pk.RequestAdd(c, other)

	require.NoError(t, pk.Select(c, "M"))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Buzo", lines[0].Product.Name)
	assert.Equal(t, int64(9), lines[0].Product.ProductID)
}

func TestZeroStockSizeIsStillSelectable(t *testing.T) {
	c := New()
	var pk Picker

	pk.RequestAdd(c, remera())
	require.NoError(t, pk.Select(c, "M"))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "M", lines[0].SizeName())
	assert.Equal(t, 0, lines[0].Size.Stock)
}
