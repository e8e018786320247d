package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestToProductAssignsSyntheticSizeIDs(t *testing.T) {
	price := 5000.0
	req := CreateProductRequest{
		Name:  "Remera",
		Price: &price,
		Sizes: []SizeInput{
			{Name: "S", Stock: 3},
			{Name: "S", Stock: 1}, // duplicate display name stays distinguishable
			{Name: "M", Stock: 0},
		},
	}

	storeID := bson.NewObjectID()
	product := req.ToProduct(storeID, 7)

	assert.Equal(t, int64(7), product.ProductID)
	assert.Equal(t, storeID, product.StoreID)
	require.Len(t, product.Sizes, 3)

	seen := map[string]bool{}
	for _, s := range product.Sizes {
		assert.NotEmpty(t, s.ID)
		assert.False(t, seen[s.ID], "size ids must be unique")
		seen[s.ID] = true
	}
	assert.Equal(t, "S", product.Sizes[0].Name)
	assert.Equal(t, "M", product.Sizes[2].Name)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestFindSize(t *testing.T) {
	p := Product{Sizes: []Size{{ID: "a", Name: "S"}, {ID: "b", Name: "M"}}}

	require.NotNil(t, p.FindSize("M"))
	assert.Equal(t, "b", p.FindSize("M").ID)
	assert.Nil(t, p.FindSize("XL"))
}

func TestHasSizes(t *testing.T) {
	assert.False(t, (&Product{}).HasSizes())
	assert.True(t, (&Product{Sizes: []Size{{Name: "S"}}}).HasSizes())
}
