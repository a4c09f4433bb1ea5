package store

import (
	"context"
	"log"
	"sync"
	"time"
)

// Store is the session state container: it owns the cart and favorites
// state, serializes dispatches, and writes a snapshot through the
// injected persistence port after every transition. The reducers stay
// pure; all side effects live here.
type Store struct {
	mu        sync.Mutex
	cart      CartState
	favorites FavoritesState
	persist   SnapshotStore
}

// New creates a Store, rehydrating from the persistence port when one
// is provided. A nil port keeps the store purely in-memory.
func New(ctx context.Context, persist SnapshotStore) (*Store, error) {
	s := &Store{
		cart:    CartState{},
		persist: persist,
	}
	if persist != nil {
		snapshot, err := persist.Load(ctx)
		if err != nil {
			return nil, err
		}
		if snapshot != nil {
			if snapshot.Cart != nil {
				s.cart = snapshot.Cart
			}
			s.favorites = snapshot.Favorites
		}
	}
	return s, nil
}

// AddItem dispatches an add-to-cart transition.
func (s *Store) AddItem(item CartLineItem) {
	s.dispatch(func() {
		s.cart = AddItem(s.cart, item)
	})
}

// IncreaseQuantity dispatches a quantity increment.
func (s *Store) IncreaseQuantity(productID string) {
	s.dispatch(func() {
		s.cart = IncreaseQuantity(s.cart, productID)
	})
}

// DecreaseQuantity dispatches a quantity decrement, floored at 1.
func (s *Store) DecreaseQuantity(productID string) {
	s.dispatch(func() {
		s.cart = DecreaseQuantity(s.cart, productID)
	})
}

// RemoveItem dispatches a line-item removal.
func (s *Store) RemoveItem(productID string) {
	s.dispatch(func() {
		s.cart = RemoveItem(s.cart, productID)
	})
}

// ResetCart empties the cart after checkout.
func (s *Store) ResetCart() {
	s.dispatch(func() {
		s.cart = ResetCart(s.cart)
	})
}

// AddFavorite dispatches a favorites addition.
func (s *Store) AddFavorite(entry FavoriteEntry) {
	s.dispatch(func() {
		s.favorites = AddFavorite(s.favorites, entry)
	})
}

// RemoveFavorite dispatches a favorites removal.
func (s *Store) RemoveFavorite(productID string) {
	s.dispatch(func() {
		s.favorites = RemoveFavorite(s.favorites, productID)
	})
}

// Cart returns the current cart state. The returned map is the
// reducer-produced value; callers must treat it as read-only.
func (s *Store) Cart() CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Favorites returns the current favorites state.
func (s *Store) Favorites() FavoritesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites
}

// Subtotal returns the cart subtotal.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Subtotal(s.cart)
}

// ItemCount returns the total quantity across line items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ItemCount(s.cart)
}

// dispatch runs one transition and persists the resulting snapshot.
// Persistence failures are logged, not surfaced: the in-memory state
// is the source of truth for the session.
func (s *Store) dispatch(apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply()

	if s.persist == nil {
		return
	}
	snapshot := &Snapshot{Cart: s.cart, Favorites: s.favorites}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.persist.Save(ctx, snapshot); err != nil {
		log.Printf("Error persisting store snapshot: %v", err)
	}
}
