package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetlane/storefront/internal/snapshot"
	"github.com/velvetlane/storefront/pkg/types"
)

// newTestSnapshots returns an open file-backed snapshot store rooted in a
// temp directory that survives for the length of the test.
func newTestSnapshots(t *testing.T) types.SnapshotStore {
	t.Helper()
	s := snapshot.NewFileStore()
	require.NoError(t, s.Open(types.Config{Backend: types.BackendFile, DataDir: t.TempDir()}))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestCart(t *testing.T) *Cart {
	t.Helper()
	cart, err := NewCart(newTestSnapshots(t))
	require.NoError(t, err)
	return cart
}

var (
	tee = types.Product{
		ID: "p1", Slug: "classic-tee", Name: "Classic Tee", Price: 29.99,
		Images: []string{"/img/tee.jpg"}, Category: "tops",
		Sizes: []string{"S", "M", "L"}, InStock: true,
	}
	hoodie = types.Product{
		ID: "p2", Slug: "zip-hoodie", Name: "Zip Hoodie", Price: 64.50,
		Images: []string{"/img/hoodie.jpg"}, Category: "tops",
		Sizes: []string{"M", "L"}, InStock: true,
	}
)

func TestCartAddItemMergesByIdentity(t *testing.T) {
	cart := newTestCart(t)

	require.NoError(t, cart.AddItem(tee, "M", "Black", 1))
	require.NoError(t, cart.AddItem(tee, "M", "Black", 2))

	items := cart.Items()
	require.Len(t, items, 1, "same identity must merge, never duplicate")
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, cart.ItemCount())
}

func TestCartAddItemDistinctIdentities(t *testing.T) {
	cart := newTestCart(t)

	require.NoError(t, cart.AddItem(tee, "M", "Black", 1))
	require.NoError(t, cart.AddItem(tee, "L", "Black", 1))
	require.NoError(t, cart.AddItem(tee, "M", "White", 1))
	require.NoError(t, cart.AddItem(hoodie, "M", "Black", 1))

	items := cart.Items()
	require.Len(t, items, 4)
	// Insertion order is preserved for display.
	assert.Equal(t, "L", items[1].SelectedSize)
	assert.Equal(t, "White", items[2].SelectedColor)
	assert.Equal(t, "p2", items[3].ProductID)
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(tee, "M", "Black", 2))

	t.Run("replaces quantity", func(t *testing.T) {
		require.NoError(t, cart.UpdateQuantity("p1", "M", "Black", 5))
		assert.Equal(t, 5, cart.Items()[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		require.NoError(t, cart.UpdateQuantity("p1", "M", "Black", 0))
		assert.Empty(t, cart.Items())
	})

	t.Run("negative removes the line", func(t *testing.T) {
		require.NoError(t, cart.AddItem(tee, "M", "Black", 2))
		require.NoError(t, cart.UpdateQuantity("p1", "M", "Black", -1))
		assert.Empty(t, cart.Items())
	})

	t.Run("absent identity is a no-op", func(t *testing.T) {
		require.NoError(t, cart.UpdateQuantity("ghost", "M", "Black", 3))
		assert.Empty(t, cart.Items())
	})
}

func TestCartRemoveItem(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(tee, "M", "Black", 1))
	require.NoError(t, cart.AddItem(tee, "L", "Black", 1))

	require.NoError(t, cart.RemoveItem("p1", "M", "Black"))
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "L", items[0].SelectedSize)

	// Removing an absent identity is benign.
	require.NoError(t, cart.RemoveItem("p1", "M", "Black"))
	assert.Len(t, cart.Items(), 1)
}

func TestCartTotalConsistency(t *testing.T) {
	cart := newTestCart(t)

	require.NoError(t, cart.AddItem(tee, "M", "Black", 2))
	require.NoError(t, cart.AddItem(hoodie, "L", "Gray", 1))
	require.NoError(t, cart.UpdateQuantity("p1", "M", "Black", 3))
	require.NoError(t, cart.RemoveItem("p2", "L", "Gray"))
	require.NoError(t, cart.AddItem(hoodie, "M", "Gray", 2))

	var want float64
	for _, item := range cart.Items() {
		want += item.Product.Price * float64(item.Quantity)
	}
	assert.InDelta(t, want, cart.Total(), 1e-9, "reported total must match recomputation")
}

func TestCartClear(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(tee, "M", "Black", 2))
	require.NoError(t, cart.Open())

	require.NoError(t, cart.Clear())
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.ItemCount())
	assert.Zero(t, cart.Total())
	assert.True(t, cart.IsOpen(), "clear must not touch drawer visibility")
}

func TestCartDrawerFlag(t *testing.T) {
	cart := newTestCart(t)
	assert.False(t, cart.IsOpen())

	require.NoError(t, cart.Toggle())
	assert.True(t, cart.IsOpen())
	require.NoError(t, cart.Toggle())
	assert.False(t, cart.IsOpen())

	require.NoError(t, cart.Open())
	assert.True(t, cart.IsOpen())
	require.NoError(t, cart.Close())
	assert.False(t, cart.IsOpen())
}

func TestCartPersistsAcrossRestart(t *testing.T) {
	snapshots := newTestSnapshots(t)

	cart, err := NewCart(snapshots)
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(tee, "M", "Black", 2))
	require.NoError(t, cart.Open())

	reloaded, err := NewCart(snapshots)
	require.NoError(t, err)

	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, tee.Price, items[0].Product.Price, "snapshot price survives reload")
	assert.True(t, reloaded.IsOpen())
}

func TestCartStartsEmptyWithoutSnapshot(t *testing.T) {
	cart := newTestCart(t)
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.ItemCount())
}
