// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	policy   *service.PasswordPolicy
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Policy   *service.PasswordPolicy
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		policy:   params.Policy,
		logger:   params.Logger,
	}
}

// Register orchestrates the complete user registration process:
// duplicate-email check, password validation, hashing, persistence.
// Nothing is persisted unless every preceding step succeeds.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting user registration", slog.String("email", input.Email))

	exists, err := srv.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		srv.logger.Error("Failed to check email existence", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to check email existence")
	}
	if exists {
		return nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("user registration failed")
	}

	if violation := srv.policy.Validate(input.Password); violation != nil {
		return nil, domainerrors.ErrInvalidPassword.WithDetails(violation.Reason).WrapMessage("user registration failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("user registration failed")
	}

	newUser := buildNewUserEntity(input.Name, input.Email, hashedPassword)

	// The unique index on email remains the authoritative guard: a concurrent
	// registration that slips past the existence check still surfaces here as
	// ErrEmailAlreadyExists from the repository.
	if err := srv.userRepo.Save(ctx, newUser); err != nil {
		srv.logger.Error("Failed to persist user during registration", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to persist user")
	}

	srv.logger.Debug("User registered successfully", slog.String("userID", newUser.ID.String()))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the user login process. An unknown email and a wrong
// password produce the same error value so the two cases are indistinguishable
// to the caller.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		srv.logger.Error("Failed to find user by email", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	srv.logger.Debug("User logged in successfully", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{User: user}, nil
}
