package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDispatchAndQueries(t *testing.T) {
	s, err := New(context.Background(), nil)
	require.NoError(t, err)

	s.AddItem(lineItem("p1", 10))
	s.AddItem(lineItem("p2", 5))
	s.IncreaseQuantity("p1")
	s.AddFavorite(favorite("p2"))

	assert.Equal(t, 2, s.Cart()["p1"].Quantity)
	assert.Equal(t, 25.0, s.Subtotal())
	assert.Equal(t, 3, s.ItemCount())
	assert.True(t, IsFavorite(s.Favorites(), "p2"))

	s.ResetCart()
	assert.Empty(t, s.Cart())
	assert.Len(t, s.Favorites(), 1, "reset clears the cart only")
}

func TestStoreRehydratesFromFileSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	persist := NewFileSnapshotStore(path)

	s, err := New(context.Background(), persist)
	require.NoError(t, err)
	s.AddItem(lineItem("p1", 10))
	s.IncreaseQuantity("p1")
	s.AddFavorite(favorite("p1"))

	// a fresh store over the same file sees the persisted session
	restored, err := New(context.Background(), NewFileSnapshotStore(path))
	require.NoError(t, err)
	assert.Equal(t, 2, restored.Cart()["p1"].Quantity)
	assert.Equal(t, 20.0, restored.Subtotal())
	assert.True(t, IsFavorite(restored.Favorites(), "p1"))
}

func TestFileSnapshotLoadMissing(t *testing.T) {
	persist := NewFileSnapshotStore(filepath.Join(t.TempDir(), "absent.json"))

	snapshot, err := persist.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, snapshot)
}

type failingSnapshotStore struct{}

func (failingSnapshotStore) Load(context.Context) (*Snapshot, error) {
	return nil, nil
}

func (failingSnapshotStore) Save(context.Context, *Snapshot) error {
	return errors.New("disk full")
}

func TestStoreSurvivesPersistenceFailure(t *testing.T) {
	s, err := New(context.Background(), failingSnapshotStore{})
	require.NoError(t, err)

	// dispatch must not fail or roll back when the port errors
	s.AddItem(lineItem("p1", 10))
	assert.Equal(t, 1, s.Cart()["p1"].Quantity)
}
