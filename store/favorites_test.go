package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func favorite(id string) FavoriteEntry {
	return FavoriteEntry{ProductID: id, Name: "Product " + id, Price: 10}
}

func TestAddFavoriteEnforcesUniqueness(t *testing.T) {
	var s FavoritesState
	for _, id := range []string{"p1", "p2", "p1", "p3", "p2", "p1"} {
		s = AddFavorite(s, favorite(id))
	}

	assert.Len(t, s, 3)
	seen := map[string]bool{}
	for _, e := range s {
		assert.False(t, seen[e.ProductID], "duplicate product id %s", e.ProductID)
		seen[e.ProductID] = true
	}
}

func TestRemoveFavorite(t *testing.T) {
	s := AddFavorite(nil, favorite("p1"))
	s = AddFavorite(s, favorite("p2"))

	s = RemoveFavorite(s, "p1")
	assert.Len(t, s, 1)
	assert.False(t, IsFavorite(s, "p1"))
	assert.True(t, IsFavorite(s, "p2"))

	// removing an absent id is a no-op
	assert.Equal(t, s, RemoveFavorite(s, "ghost"))
}
