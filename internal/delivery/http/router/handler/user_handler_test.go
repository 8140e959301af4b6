package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/validator"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUsecase returns canned results for handler tests.
type stubUsecase struct {
	registerOutput *usecase.RegisterOutput
	registerErr    error
	loginOutput    *usecase.LoginOutput
	loginErr       error
}

func (s *stubUsecase) Register(_ context.Context, _ *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerOutput, s.registerErr
}

func (s *stubUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOutput, s.loginErr
}

func newTestEcho(uc usecase.UserUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewUserHandler(uc, logger)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/health", HealthCheck)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "John Doe",
		Email:        "john.doe@example.com",
		PasswordHash: "$2a$10$secret",
	}
	e := newTestEcho(&stubUsecase{registerOutput: &usecase.RegisterOutput{User: user}})

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"John Doe","email":"john.doe@example.com","password":"password1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.Contains(t, rec.Body.String(), "john.doe@example.com")
	// The digest must never be re-serialized.
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_EmailAlreadyExists(t *testing.T) {
	e := newTestEcho(&stubUsecase{
		registerErr: domainerrors.ErrEmailAlreadyExists.WrapMessage("user registration failed"),
	})

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"John Doe","email":"john.doe@example.com","password":"password1"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_ALREADY_EXISTS")
	assert.Contains(t, rec.Body.String(), "email already in use")
}

func TestUserHandler_Register_InvalidPassword(t *testing.T) {
	e := newTestEcho(&stubUsecase{
		registerErr: domainerrors.ErrInvalidPassword.
			WithDetails("password must be at least 8 characters long").
			WrapMessage("user registration failed"),
	})

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"John Doe","email":"john.doe@example.com","password":"short1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PASSWORD")
	assert.Contains(t, rec.Body.String(), "at least 8 characters")
}

func TestUserHandler_Register_MalformedInput(t *testing.T) {
	e := newTestEcho(&stubUsecase{})

	// Invalid JSON fails at binding
	rec := doJSON(e, http.MethodPost, "/auth/register", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")

	// Missing required fields fail struct validation
	rec = doJSON(e, http.MethodPost, "/auth/register", `{"name":"John Doe"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")

	// Invalid email format fails struct validation
	rec = doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"John Doe","email":"not-an-email","password":"password1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_Login_Success(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "John Doe",
		Email:        "john.doe@example.com",
		PasswordHash: "$2a$10$secret",
	}
	e := newTestEcho(&stubUsecase{loginOutput: &usecase.LoginOutput{User: user}})

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"john.doe@example.com","password":"password1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho(&stubUsecase{
		loginErr: domainerrors.ErrInvalidCredentials.WrapMessage("login failed"),
	})

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"john.doe@example.com","password":"wrongpassword"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

func TestUserHandler_Login_UnhandledErrorIsOpaque(t *testing.T) {
	e := newTestEcho(&stubUsecase{
		loginErr: errors.New("store unreachable"),
	})

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"john.doe@example.com","password":"password1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	// Internals never cross the boundary.
	assert.NotContains(t, rec.Body.String(), "store unreachable")
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho(&stubUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
