package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiendia.app/api/pkg/models"
)

func priced(v float64) *float64 { return &v }

func remera() models.Product {
	return models.Product{
		ProductID: 1,
		Name:      "Remera",
		Price:     priced(5000),
		Sizes: []models.Size{
			{ID: "sz-s", Name: "S", Stock: 3},
			{ID: "sz-m", Name: "M", Stock: 0},
		},
	}
}

func gorra() models.Product {
	return models.Product{
		ProductID: 2,
		Name:      "Gorra",
		Price:     priced(2000),
	}
}

func TestAddSamePairIncrementsSingleLine(t *testing.T) {
	c := New()
	p := remera()
	size := &p.Sizes[0]

	for i := 0; i < 4; i++ {
		c.Add(p, size)
	}

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, 4, c.ItemCount())
}

func TestDifferentSizesAreDistinctLines(t *testing.T) {
	c := New()
	p := remera()

	c.Add(p, &p.Sizes[0])
	c.Add(p, &p.Sizes[1])
	c.Add(p, nil)

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "S", lines[0].SizeName())
	assert.Equal(t, "M", lines[1].SizeName())
	assert.Equal(t, "", lines[2].SizeName())
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := New()
	c.Add(gorra(), nil)
	p := remera()
	c.Add(p, &p.Sizes[0])
	c.Add(gorra(), nil)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Gorra", lines[0].Product.Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Remera", lines[1].Product.Name)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	p := remera()
	c.Add(p, &p.Sizes[0])
	c.Add(p, &p.Sizes[0])
	c.Add(gorra(), nil)

	before := c.ItemCount()
	c.UpdateQuantity(1, "S", 0)

	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, before-2, c.ItemCount())
}

func TestUpdateQuantityNegativeRemovesLine(t *testing.T) {
	c := New()
	c.Add(gorra(), nil)

	c.UpdateQuantity(2, "", -3)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
}

func TestUpdateQuantityIsAbsolute(t *testing.T) {
	c := New()
	c.Add(gorra(), nil)
	c.Add(gorra(), nil)

	c.UpdateQuantity(2, "", 7)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestUpdateQuantityMissingLineIsNoOp(t *testing.T) {
	c := New()
	c.Add(gorra(), nil)

	c.UpdateQuantity(99, "", 5)
	c.UpdateQuantity(2, "S", 5)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestRemoveMissingLineIsNoOp(t *testing.T) {
	c := New()
	c.Add(gorra(), nil)

	c.Remove(99, "")
	c.Remove(2, "XL")

	assert.Len(t, c.Lines(), 1)
}

func TestRemoveBySizeKey(t *testing.T) {
	c := New()
	p := remera()
	c.Add(p, &p.Sizes[0])
	c.Add(p, &p.Sizes[1])

	c.Remove(1, "S")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "M", lines[0].SizeName())
}

func TestTotalTracksEveryMutation(t *testing.T) {
	c := New()
	p := remera()

	assert.Equal(t, 0.0, c.Total())

	c.Add(p, &p.Sizes[0])
	assert.Equal(t, 5000.0, c.Total())

	c.Add(p, &p.Sizes[0])
	assert.Equal(t, 10000.0, c.Total())

	c.Add(gorra(), nil)
	assert.Equal(t, 12000.0, c.Total())

	c.UpdateQuantity(1, "S", 1)
	assert.Equal(t, 7000.0, c.Total())

	c.Remove(2, "")
	assert.Equal(t, 5000.0, c.Total())
}

func TestUnpricedProductCountsAsZero(t *testing.T) {
	c := New()
	c.Add(models.Product{ProductID: 3, Name: "Muestra"}, nil)
	c.Add(gorra(), nil)

	assert.Equal(t, 2000.0, c.Total())
	assert.Equal(t, 2, c.ItemCount())
}

func TestLineIsSnapshotOfProduct(t *testing.T) {
	c := New()
	p := remera()
	c.Add(p, &p.Sizes[0])

	p.Name = "Renamed"
	*p.Price = 1

	lines := c.Lines()
	assert.Equal(t, "Remera", lines[0].Product.Name)
	assert.Equal(t, 5000.0, c.Total())
}

func TestNoSizeLineLifecycle(t *testing.T) {
	c := New()
	c.Add(gorra(), nil)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Nil(t, lines[0].Size)

	c.Remove(2, "")
	assert.True(t, c.IsEmpty())
}

func TestJSONRoundTrip(t *testing.T) {
	c := New()
	p := remera()
	c.Add(p, &p.Sizes[0])
	c.Add(p, &p.Sizes[0])
	c.Add(gorra(), nil)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	restored := New()
	require.NoError(t, json.Unmarshal(data, restored))

	assert.Equal(t, c.Lines(), restored.Lines())
	assert.Equal(t, c.Total(), restored.Total())
	assert.Equal(t, c.ItemCount(), restored.ItemCount())
}

func TestEmptyCartMarshalsAsEmptyList(t *testing.T) {
	data, err := json.Marshal(New())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
