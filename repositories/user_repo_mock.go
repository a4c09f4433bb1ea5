package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
// Like the Mongo implementation with its unique indexes, Create is
// atomic: two concurrent inserts with the same email or mobile number
// cannot both succeed.
type MockUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user, rejecting duplicate emails and mobile numbers.
func (r *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
		if u.MobileNo == user.MobileNo {
			return ErrDuplicateMobile
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID.Hex()] = *user
	return nil
}

// GetByEmail looks a user up by email.
func (r *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(func(u models.User) bool { return u.Email == email })
}

// GetByMobile looks a user up by mobile number.
func (r *MockUserRepository) GetByMobile(ctx context.Context, mobileNo string) (*models.User, error) {
	return r.findOne(func(u models.User) bool { return u.MobileNo == mobileNo })
}

// GetByID looks a user up by hex id.
func (r *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// Update replaces an existing user.
func (r *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := user.ID.Hex()
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	for otherID, u := range r.users {
		if otherID == id {
			continue
		}
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
		if u.MobileNo == user.MobileNo {
			return ErrDuplicateMobile
		}
	}
	r.users[id] = *user
	return nil
}

// EmailInUse reports whether another user already holds this email.
func (r *MockUserRepository) EmailInUse(ctx context.Context, email, excludeID string) (bool, error) {
	return r.inUse(func(u models.User) bool { return u.Email == email }, excludeID), nil
}

// MobileInUse reports whether another user already holds this mobile number.
func (r *MockUserRepository) MobileInUse(ctx context.Context, mobileNo, excludeID string) (bool, error) {
	return r.inUse(func(u models.User) bool { return u.MobileNo == mobileNo }, excludeID), nil
}

func (r *MockUserRepository) findOne(match func(models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MockUserRepository) inUse(match func(models.User) bool, excludeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, u := range r.users {
		if id == excludeID {
			continue
		}
		if match(u) {
			return true
		}
	}
	return false
}
