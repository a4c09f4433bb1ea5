package store

// FavoriteEntry is a product snapshot in the favorites list.
type FavoriteEntry struct {
	ProductID string   `json:"_id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Images    []string `json:"images"`
}

// FavoritesState holds favorites with set semantics over product id.
type FavoritesState []FavoriteEntry

// AddFavorite appends a product snapshot. Uniqueness is enforced here
// rather than left to the caller: a product id already in the list is
// a no-op.
func AddFavorite(s FavoritesState, entry FavoriteEntry) FavoritesState {
	for _, e := range s {
		if e.ProductID == entry.ProductID {
			return s
		}
	}
	next := make(FavoritesState, len(s), len(s)+1)
	copy(next, s)
	return append(next, entry)
}

// RemoveFavorite filters out the matching entry. Absent ids are a no-op.
func RemoveFavorite(s FavoritesState, productID string) FavoritesState {
	next := make(FavoritesState, 0, len(s))
	for _, e := range s {
		if e.ProductID != productID {
			next = append(next, e)
		}
	}
	if len(next) == len(s) {
		return s
	}
	return next
}

// IsFavorite reports whether a product id is in the list.
func IsFavorite(s FavoritesState, productID string) bool {
	for _, e := range s {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}
