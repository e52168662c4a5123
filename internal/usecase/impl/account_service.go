// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/PradyunT/kaizen-task/internal/domain/entity"
	domainerrors "github.com/PradyunT/kaizen-task/internal/domain/errors"
	"github.com/PradyunT/kaizen-task/internal/domain/repository"
	"github.com/PradyunT/kaizen-task/internal/domain/service"
	"github.com/PradyunT/kaizen-task/internal/usecase"

	"github.com/pkg/errors"
)

// dummyPasswordHash is verified when the email is unknown so a login against
// a missing account costs the same key derivation as one against an existing
// account. The result is discarded either way.
const dummyPasswordHash = "$argon2id$v=19$m=19456,t=2,p=1$mK1zp767ZDsSClJ8HP+qtw$uJdh3qZK9UKyNzL4kO1JSEA8mw0KoQ6YZ+oAId7PmY4"

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokenSvc  service.TokenService
	publisher service.AuthEventPublisher
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	publisher service.AuthEventPublisher,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		publisher: publisher,
		logger:    logger,
	}
}

// Register creates a new account and issues a session token.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.logger.Info("Starting user registration", "email", email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("registration failed")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.logger.Warn("Failed to create user", "email", email, "error", err.Error())

		return nil, errors.WithStack(err)
	}

	token, err := srv.tokenSvc.Issue(email)
	if err != nil {
		srv.logger.Error("Failed to issue token after registration", "error", err)

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("registration failed")
	}

	srv.publisher.Publish(ctx, service.AuthEvent{
		Type:  service.AuthEventRegistered,
		Email: email,
		At:    time.Now(),
	})
	srv.logger.Debug("User registered successfully", "email", email)

	return &usecase.AuthOutput{
		Message:      "User registered successfully",
		Token:        token,
		UserEmail:    email,
		UserUsername: newUser.Username,
	}, nil
}

// Login verifies credentials and issues a session token. The client-visible
// outcome is identical for an unknown email and a wrong password; the
// distinction exists in logs only.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.logger.Debug("Starting user login", "email", email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn the same key-derivation cost as a real verification.
			_ = srv.hasher.Check(input.Password, dummyPasswordHash)
			srv.logger.Warn("Login failed: unknown email", "email", email)

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		srv.logger.Error("Login failed: user lookup error", "email", email, "error", err.Error())

		return nil, errors.WithStack(err)
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed: wrong password", "email", email)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenSvc.Issue(user.Email)
	if err != nil {
		srv.logger.Error("Failed to issue token after login", "error", err)

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("login failed")
	}

	srv.publisher.Publish(ctx, service.AuthEvent{
		Type:  service.AuthEventLoggedIn,
		Email: user.Email,
		At:    time.Now(),
	})
	srv.logger.Debug("User logged in successfully", "email", user.Email)

	return &usecase.AuthOutput{
		Message:      "You are now logged in",
		Token:        token,
		UserEmail:    user.Email,
		UserUsername: user.Username,
	}, nil
}

// normalizeEmail lowercases exactly once at the boundary where an email
// enters the application layer; everything downstream relies on it.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
