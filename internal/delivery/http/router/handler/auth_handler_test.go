package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/PradyunT/kaizen-task/internal/domain/errors"
	"github.com/PradyunT/kaizen-task/internal/usecase"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	fx := createTestServer(t, "")

	fx.accountUC.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Username == "testuser" &&
			input.Email == "test@example.com" &&
			input.Password == "Password123!"
	})).Return(&usecase.AuthOutput{
		Message:      "User registered successfully",
		Token:        "signed-token",
		UserEmail:    "test@example.com",
		UserUsername: "testuser",
	}, nil)

	rec := fx.request(http.MethodPost, "/auth/register",
		`{"username":"testuser","email":"test@example.com","password":"Password123!"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)

	// The success body is flat, not enveloped.
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body["message"])
	assert.Equal(t, "signed-token", body["token"])
	assert.Equal(t, "test@example.com", body["user_email"])
	assert.Equal(t, "testuser", body["user_username"])
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	fx := createTestServer(t, "")

	fx.accountUC.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email taken"))

	rec := fx.request(http.MethodPost, "/auth/register",
		`{"username":"testuser","email":"taken@example.com","password":"Password123!"}`, "")

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_IDENTITY")
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	fx := createTestServer(t, "")

	rec := fx.request(http.MethodPost, "/auth/register",
		`{"username":"testuser","email":"not-an-email","password":"Password123!"}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	fx.accountUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	fx := createTestServer(t, "")

	rec := fx.request(http.MethodPost, "/auth/register", `{}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	fx.accountUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_MalformedJSON(t *testing.T) {
	fx := createTestServer(t, "")

	rec := fx.request(http.MethodPost, "/auth/register", `{"username":`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	fx := createTestServer(t, "")

	fx.accountUC.On("Login", mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
		return input.Email == "test@example.com" && input.Password == "Password123!"
	})).Return(&usecase.AuthOutput{
		Message:      "You are now logged in",
		Token:        "signed-token",
		UserEmail:    "test@example.com",
		UserUsername: "testuser",
	}, nil)

	rec := fx.request(http.MethodPost, "/auth/login",
		`{"email":"test@example.com","password":"Password123!"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "You are now logged in", body["message"])
	assert.Equal(t, "signed-token", body["token"])
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	fx := createTestServer(t, "")

	fx.accountUC.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	rec := fx.request(http.MethodPost, "/auth/login",
		`{"email":"test@example.com","password":"wrong"}`, "")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect email or password")
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	fx := createTestServer(t, "")

	rec := fx.request(http.MethodPost, "/auth/login", `{"email":"test@example.com"}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	fx.accountUC.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}
