package inventory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"clothing-inventory/internal/store"
)

// Seeded store carries 8 items; ids 1..8 are taken.
const seedItemCount = 8

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	return NewService(db), db
}

func TestAddItemRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddItem(ctx, AddItemInput{
		Name:        "Olive Utility Jacket",
		Category:    "Jackets",
		Price:       2499,
		Description: "Four-pocket cotton jacket",
		Sizes:       map[string]int{"M": 5, "L": 3},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Olive Utility Jacket", got.Name)
	assert.Equal(t, "Jackets", got.Category)
	assert.Equal(t, "Four-pocket cotton jacket", got.Description)
	assert.InDelta(t, 2499.0, got.Price.InexactFloat64(), 0.001)
	assert.Equal(t, map[string]int{"M": 5, "L": 3}, got.SizeMap())
}

func TestAddItemDefaultSizes(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.AddItem(context.Background(), AddItemInput{
		Name:     "Plain Grey Tee",
		Category: "T-Shirts",
		Price:    399,
	})
	require.NoError(t, err)

	got, err := svc.GetItem(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"S": 0, "M": 0, "L": 0}, got.SizeMap())
}

func TestAddItemExplicitIDConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddItem(ctx, AddItemInput{
		ID:       100,
		Name:     "Numbered Cap",
		Category: "Accessories",
		Price:    299,
		Sizes:    map[string]int{"M": 1},
	})
	require.NoError(t, err)
	require.Equal(t, int64(100), created.ID)

	_, err = svc.AddItem(ctx, AddItemInput{
		ID:       100,
		Name:     "Another Cap",
		Category: "Accessories",
		Price:    299,
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestAddItemValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   AddItemInput
	}{
		{"empty name", AddItemInput{Category: "Jeans", Price: 10}},
		{"blank name", AddItemInput{Name: "   ", Category: "Jeans", Price: 10}},
		{"empty category", AddItemInput{Name: "Jeans", Price: 10}},
		{"negative price", AddItemInput{Name: "Jeans", Category: "Jeans", Price: -1}},
		{"negative id", AddItemInput{ID: -2, Name: "Jeans", Category: "Jeans", Price: 10}},
		{"unknown size", AddItemInput{Name: "Jeans", Category: "Jeans", Price: 10, Sizes: map[string]int{"XS2": 1}}},
		{"negative quantity", AddItemInput{Name: "Jeans", Category: "Jeans", Price: 10, Sizes: map[string]int{"M": -1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddItem(ctx, tc.in)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestListInventoryOrderedByID(t *testing.T) {
	svc, _ := newTestService(t)

	items, err := svc.ListInventory(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, items, seedItemCount)

	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].ID, items[i].ID)
	}
	for _, it := range items {
		assert.NotEmpty(t, it.Sizes, "item %d should carry stock rows", it.ID)
	}
}

func TestListInventoryPagination(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	page, err := svc.ListInventory(ctx, ListOptions{Limit: 3})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, int64(1), page[0].ID)

	page, err = svc.ListInventory(ctx, ListOptions{Limit: 3, Offset: 3})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, int64(4), page[0].ID)
}

func TestGetItemNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetItem(context.Background(), 99999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSearchItems(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("matches seed item by name fragment", func(t *testing.T) {
		items, err := svc.SearchItems(ctx, "blazer", 0)
		require.NoError(t, err)
		require.NotEmpty(t, items)

		names := make([]string, 0, len(items))
		for _, it := range items {
			names = append(names, it.Name)
		}
		assert.Contains(t, names, "Navy Single-Breasted Slim Fit Formal Blazer")
	})

	t.Run("matches by category", func(t *testing.T) {
		items, err := svc.SearchItems(ctx, "t-shirt", 0)
		require.NoError(t, err)
		assert.NotEmpty(t, items)
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		items, err := svc.SearchItems(ctx, "submarine", 0)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("empty query returns all items", func(t *testing.T) {
		items, err := svc.SearchItems(ctx, "", 0)
		require.NoError(t, err)
		assert.Len(t, items, seedItemCount)
	})

	t.Run("limit bounds the result", func(t *testing.T) {
		items, err := svc.SearchItems(ctx, "", 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("wildcards are literals", func(t *testing.T) {
		items, err := svc.SearchItems(ctx, "%", 0)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestUpdateQuantity(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	t.Run("updates an existing stock row", func(t *testing.T) {
		row, err := svc.UpdateQuantity(ctx, 1, "M", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, row.Quantity)

		got, err := svc.GetItem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 7, got.SizeMap()["M"])
	})

	t.Run("is idempotent and never duplicates rows", func(t *testing.T) {
		_, err := svc.UpdateQuantity(ctx, 1, "M", 7)
		require.NoError(t, err)
		_, err = svc.UpdateQuantity(ctx, 1, "M", 7)
		require.NoError(t, err)

		var rows int64
		require.NoError(t, db.Model(&store.SizeQuantity{}).
			Where("item_id = ? AND size = ?", 1, "M").Count(&rows).Error)
		assert.Equal(t, int64(1), rows)

		got, err := svc.GetItem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 7, got.SizeMap()["M"])
	})

	t.Run("creates a missing stock row for a known size", func(t *testing.T) {
		// Item 1 is seeded without XXL.
		row, err := svc.UpdateQuantity(ctx, 1, "XXL", 4)
		require.NoError(t, err)
		assert.Equal(t, 4, row.Quantity)

		got, err := svc.GetItem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 4, got.SizeMap()["XXL"])
	})

	t.Run("rejects negative quantity and leaves state unchanged", func(t *testing.T) {
		before, err := svc.GetItem(ctx, 1)
		require.NoError(t, err)

		_, err = svc.UpdateQuantity(ctx, 1, "M", -3)
		require.ErrorIs(t, err, ErrValidation)

		after, err := svc.GetItem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, before.SizeMap(), after.SizeMap())
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		_, err := svc.UpdateQuantity(ctx, 99999, "M", 1)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown size label is not found", func(t *testing.T) {
		_, err := svc.UpdateQuantity(ctx, 1, "GIGANTIC", 1)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestQuantityNeverNegative(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateQuantity(ctx, 2, "S", -1)
	require.ErrorIs(t, err, ErrValidation)

	var negative int64
	require.NoError(t, db.Model(&store.SizeQuantity{}).Where("quantity < 0").Count(&negative).Error)
	assert.Zero(t, negative)
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(ErrValidation))
	assert.True(t, IsDomainError(ErrNotFound))
	assert.True(t, IsDomainError(ErrConflict))
	assert.False(t, IsDomainError(gorm.ErrInvalidDB))
	assert.False(t, IsDomainError(nil))
}
