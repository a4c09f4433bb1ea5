package store

import "context"

// Snapshot is the serialized form of the session state, written after
// every transition and restored at startup.
type Snapshot struct {
	Cart      CartState      `json:"cart"`
	Favorites FavoritesState `json:"favorites"`
}

// SnapshotStore is the persistence port injected into the Store. Load
// returns (nil, nil) when no snapshot has been saved yet.
type SnapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
}
