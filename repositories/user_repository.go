package repositories

import (
	"context"

	"storefront/models"
)

// UserRepository defines the interface for user data access.
//
// Create returns ErrDuplicateEmail or ErrDuplicateMobile when the
// insert loses a uniqueness race; EmailInUse/MobileInUse let the
// profile-update flow exclude the user's own document.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByMobile(ctx context.Context, mobileNo string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	EmailInUse(ctx context.Context, email, excludeID string) (bool, error)
	MobileInUse(ctx context.Context, mobileNo, excludeID string) (bool, error)
}
