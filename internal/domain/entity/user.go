// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single registered account.
// The email address is unique across all users and doubles as the login identifier.
type User struct {
	ID           uuid.UUID // Server-assigned identifier, immutable after creation.
	Name         string    // The user's display name. Free text.
	Email        string    // The user's email, used as the login key. Unique.
	PasswordHash string    // Bcrypt digest of the password. The plaintext is never stored.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
