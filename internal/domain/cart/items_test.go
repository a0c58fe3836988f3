package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() ItemList {
	return ItemList{
		{ProductID: "p1", Name: "Camiseta", Quantity: 2, UnitPrice: 10},
		{ProductID: "p2", Name: "Gorra", Quantity: 1, UnitPrice: 5},
	}
}

func TestItemsTotal(t *testing.T) {
	assert.Equal(t, 25.0, sampleItems().Total())
}

func TestItemsTotal_EmptyCart(t *testing.T) {
	assert.Equal(t, 0.0, ItemList{}.Total())
}

func TestItemsTotal_ExactDecimals(t *testing.T) {
	items := ItemList{
		{ProductID: "p1", Quantity: 3, UnitPrice: 0.1},
		{ProductID: "p2", Quantity: 1, UnitPrice: 0.2},
	}
	// 3×0.1 + 0.2 must be exactly 0.5, not 0.5000000000000001
	assert.Equal(t, 0.5, items.Total())
}

func TestAddItem_AppendsNewLine(t *testing.T) {
	items := addItem(sampleItems(), Item{ProductID: "p3", Quantity: 1, UnitPrice: 7})
	require.Len(t, items, 3)
	assert.Equal(t, "p3", items[2].ProductID)
}

func TestAddItem_MergesExistingLine(t *testing.T) {
	items := addItem(sampleItems(), Item{ProductID: "p1", Quantity: 3, UnitPrice: 12})
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Quantity)
	// The merged line takes the incoming price
	assert.Equal(t, 12.0, items[0].UnitPrice)
}

func TestRemoveItem(t *testing.T) {
	items := removeItem(sampleItems(), "p1")
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
}

func TestRemoveItem_AbsentProductIsNoOp(t *testing.T) {
	items := removeItem(sampleItems(), "missing")
	assert.Equal(t, sampleItems(), items)
}

func TestSetQuantity(t *testing.T) {
	items := sampleItems()
	ok := setQuantity(items, "p2", 3)
	require.True(t, ok)
	assert.Equal(t, 3, items[1].Quantity)
	assert.Equal(t, 35.0, items.Total())
}

func TestSetQuantity_AbsentProduct(t *testing.T) {
	items := sampleItems()
	assert.False(t, setQuantity(items, "missing", 3))
	assert.Equal(t, sampleItems(), items)
}

// Pins down the end-to-end scenario: 2×10 + 1×5 = 25, bumping the second
// line to 3 gives 35, clearing gives 0.
func TestCartScenario(t *testing.T) {
	items := sampleItems()
	assert.Equal(t, 25.0, items.Total())

	require.True(t, setQuantity(items, "p2", 3))
	assert.Equal(t, 35.0, items.Total())

	items = ItemList{}
	assert.Empty(t, items)
	assert.Equal(t, 0.0, items.Total())
}
