// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// ExistsByEmail reports whether a user with the given email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindByEmail retrieves a single user by their email address.
	// Returns ErrUserNotFound when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Save persists a new user entity to the storage, assigning the
	// server-side identifier and timestamps on the passed entity.
	Save(ctx context.Context, user *entity.User) error
}
