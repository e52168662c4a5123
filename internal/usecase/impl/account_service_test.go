package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PradyunT/kaizen-task/internal/domain/entity"
	domainerrors "github.com/PradyunT/kaizen-task/internal/domain/errors"
	"github.com/PradyunT/kaizen-task/internal/domain/repository"
	"github.com/PradyunT/kaizen-task/internal/domain/service"
	"github.com/PradyunT/kaizen-task/internal/usecase"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service   usecase.AccountUsecase
	userRepo  *mockUserRepository
	hasher    *mockPasswordHasher
	tokenSvc  *mockTokenService
	publisher *mockAuthEventPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokenSvc := &mockTokenService{}
	publisher := &mockAuthEventPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAccountService(userRepo, hasher, tokenSvc, publisher, logger)

	t.Cleanup(func() {
		userRepo.AssertExpectations(t)
		hasher.AssertExpectations(t)
		tokenSvc.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	return accountServiceFixtures{
		service:   svc,
		userRepo:  userRepo,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		publisher: publisher,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "testuser",
		Email:    "Test@Example.com",
		Password: "Password123!",
	}

	fx.hasher.On("Hash", "Password123!").Return("$argon2id$encoded", nil)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "test@example.com" &&
			u.Username == "testuser" &&
			u.PasswordHash == "$argon2id$encoded"
	})).Return(nil)
	fx.tokenSvc.On("Issue", "test@example.com").Return("signed-token", nil)
	fx.publisher.On("Publish", ctx, mock.MatchedBy(func(e service.AuthEvent) bool {
		return e.Type == service.AuthEventRegistered && e.Email == "test@example.com"
	})).Return()

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", output.Message)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, "test@example.com", output.UserEmail)
	assert.Equal(t, "testuser", output.UserUsername)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "testuser",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.On("Hash", "Password123!").Return("$argon2id$encoded", nil)
	fx.userRepo.On("Create", ctx, mock.Anything).
		Return(domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email taken"))

	output, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrEmailAlreadyRegistered.ErrorCode(), appErr.ErrorCode())

	fx.tokenSvc.AssertNotCalled(t, "Issue", mock.Anything)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.On("Hash", "Password123!").Return("", errors.New("entropy source failed"))

	output, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPasswordHashFailed.ErrorCode(), appErr.ErrorCode())

	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "$argon2id$stored",
	}

	fx.userRepo.On("FindByEmail", ctx, "test@example.com").Return(user, nil)
	fx.hasher.On("Check", "Password123!", "$argon2id$stored").Return(true)
	fx.tokenSvc.On("Issue", "test@example.com").Return("signed-token", nil)
	fx.publisher.On("Publish", ctx, mock.MatchedBy(func(e service.AuthEvent) bool {
		return e.Type == service.AuthEventLoggedIn && e.Email == "test@example.com"
	})).Return()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Test@Example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "You are now logged in", output.Message)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, "test@example.com", output.UserEmail)
	assert.Equal(t, "testuser", output.UserUsername)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)
	// The dummy verification keeps the timing profile of a real one.
	fx.hasher.On("Check", "Password123!", dummyPasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		Email:        "test@example.com",
		PasswordHash: "$argon2id$stored",
	}

	fx.userRepo.On("FindByEmail", ctx, "test@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "$argon2id$stored").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())

	fx.tokenSvc.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAccountService_Login_SameOutcomeForBothFailures(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		Email:        "known@example.com",
		PasswordHash: "$argon2id$stored",
	}

	fx.userRepo.On("FindByEmail", ctx, "unknown@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Check", "pw", dummyPasswordHash).Return(false)
	fx.userRepo.On("FindByEmail", ctx, "known@example.com").Return(user, nil)
	fx.hasher.On("Check", "pw", "$argon2id$stored").Return(false)

	_, errUnknown := fx.service.Login(ctx, &usecase.LoginInput{Email: "unknown@example.com", Password: "pw"})
	_, errWrongPw := fx.service.Login(ctx, &usecase.LoginInput{Email: "known@example.com", Password: "pw"})

	var appErrUnknown, appErrWrongPw domainerrors.AppError
	require.ErrorAs(t, errUnknown, &appErrUnknown)
	require.ErrorAs(t, errWrongPw, &appErrWrongPw)

	// A caller probing for registered emails must not be able to tell the
	// two failures apart.
	assert.Equal(t, appErrUnknown.HTTPCode(), appErrWrongPw.HTTPCode())
	assert.Equal(t, appErrUnknown.ErrorCode(), appErrWrongPw.ErrorCode())
	assert.Equal(t, appErrUnknown.Message(), appErrWrongPw.Message())
}
