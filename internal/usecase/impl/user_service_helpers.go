package impl

import "accounts/internal/domain/entity"

// buildNewUserEntity assembles a user entity for persistence. The identifier
// and timestamps are assigned by the repository on Save.
func buildNewUserEntity(name, email, passwordHash string) *entity.User {
	return &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
}
