package entity

import (
	"errors"

	"github.com/google/uuid"
)

// DirectoryUser is the identity the user directory service resolves a
// username to.
type DirectoryUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// ErrUserNotFound is returned by directory lookups when no user exists for
// the given username.
var ErrUserNotFound = errors.New("user not found in directory")
