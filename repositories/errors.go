package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Handlers
// branch on these to pick status codes; anything else is a store error.
var (
	ErrNotFound        = errors.New("document not found")
	ErrDuplicateEmail  = errors.New("email already in use")
	ErrDuplicateMobile = errors.New("mobile number already in use")
)
