package cart

import (
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestProduct(id int64, price string) model.Product {
	return model.Product{
		ProductID: id,
		Name:      "product",
		Price:     decimal.RequireFromString(price),
		Category:  model.CategoryOther,
		Active:    true,
	}
}

func TestAdd_SameProductIncrementsQuantity(t *testing.T) {
	p1 := newTestProduct(1, "10.50")
	p2 := newTestProduct(2, "3.00")

	c := model.Cart{}
	c = Add(c, p1)
	c = Add(c, p1)
	c = Add(c, p2)

	require.Len(t, c.Lines, 2)
	require.Equal(t, int64(1), c.Lines[0].Product.ProductID)
	require.Equal(t, 2, c.Lines[0].Quantity)
	require.Equal(t, int64(2), c.Lines[1].Product.ProductID)
	require.Equal(t, 1, c.Lines[1].Quantity)
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	p1 := newTestProduct(1, "10.50")

	original := Add(model.Cart{}, p1)
	_ = Add(original, p1)

	require.Equal(t, 1, original.Lines[0].Quantity)
}

func TestRemove_AbsentProductIsNoOp(t *testing.T) {
	p1 := newTestProduct(1, "10.50")
	c := Add(model.Cart{}, p1)

	result := Remove(c, 99)

	require.Equal(t, c.Lines, result.Lines)
}

func TestRemove_ExistingProduct(t *testing.T) {
	c := model.Cart{}
	c = Add(c, newTestProduct(1, "10.50"))
	c = Add(c, newTestProduct(2, "3.00"))

	c = Remove(c, 1)

	require.Len(t, c.Lines, 1)
	require.Equal(t, int64(2), c.Lines[0].Product.ProductID)
}

func TestTotal_SumOfPriceTimesQuantity(t *testing.T) {
	c := model.Cart{}
	p1 := newTestProduct(1, "10.50")
	p2 := newTestProduct(2, "0.10")
	c = Add(c, p1)
	c = Add(c, p1)
	c = Add(c, p2)

	// 10.50*2 + 0.10*1 = 21.10，decimal不會有浮點漂移
	require.True(t, decimal.RequireFromString("21.10").Equal(Total(c)))
}

func TestTotal_UnaffectedByRemoveAndReAddOfUnrelatedLines(t *testing.T) {
	p1 := newTestProduct(1, "10.50")
	p2 := newTestProduct(2, "3.00")
	p3 := newTestProduct(3, "7.25")

	c := model.Cart{}
	c = Add(c, p1)
	c = Add(c, p2)
	c = Add(c, p3)
	before := Total(c)

	c = Remove(c, 2)
	c = Add(c, p2)

	require.True(t, before.Equal(Total(c)))
}

func TestTotal_EmptyCartIsZero(t *testing.T) {
	require.True(t, Total(model.Cart{}).IsZero())
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	store := NewStore()
	store.Add(newTestProduct(1, "10.50"))

	snapshot := store.Snapshot()
	snapshot.Lines[0].Quantity = 99

	require.Equal(t, 1, store.Snapshot().Lines[0].Quantity)
}

func TestStore_ClearEmptiesCart(t *testing.T) {
	store := NewStore()
	store.Add(newTestProduct(1, "10.50"))
	store.Add(newTestProduct(2, "3.00"))

	store.Clear()

	require.True(t, store.IsEmpty())
	require.True(t, store.Total().IsZero())
}
