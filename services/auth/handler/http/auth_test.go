package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/services/auth/mocks"
	"github.com/mototrack/mototrack/services/auth/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthHandler(t *testing.T) (*AuthHandler, *mocks.MockAuthUC, *echo.Echo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(uc), uc, echo.New()
}

func jsonRequest(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister(t *testing.T) {
	h, uc, e := setupAuthHandler(t)

	uc.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		Email:           "rider@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}).Return(&models.AuthResponse{
		UserID: uuid.New(),
		Email:  "rider@example.com",
		Token:  "token-123",
	}, nil)

	body := `{"email":"rider@example.com","password":"secret123","confirm_password":"secret123"}`
	c, rec := jsonRequest(e, "/api/auth/register", body)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "token-123")
}

func TestRegister_ValidationError(t *testing.T) {
	h, uc, e := setupAuthHandler(t)

	uc.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, usecase.ErrPasswordMismatch)

	body := `{"email":"rider@example.com","password":"secret123","confirm_password":"other"}`
	c, rec := jsonRequest(e, "/api/auth/register", body)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "passwords do not match")
}

func TestRegister_EmailTaken(t *testing.T) {
	h, uc, e := setupAuthHandler(t)

	uc.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, usecase.ErrEmailTaken)

	body := `{"email":"taken@example.com","password":"secret123","confirm_password":"secret123"}`
	c, rec := jsonRequest(e, "/api/auth/register", body)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	h, uc, e := setupAuthHandler(t)

	uc.EXPECT().Login(gomock.Any(), models.LoginRequest{
		Email:    "rider@example.com",
		Password: "secret123",
	}).Return(&models.AuthResponse{
		UserID: uuid.New(),
		Email:  "rider@example.com",
		Token:  "token-456",
	}, nil)

	c, rec := jsonRequest(e, "/api/auth/login", `{"email":"rider@example.com","password":"secret123"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token-456")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h, uc, e := setupAuthHandler(t)

	uc.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, usecase.ErrInvalidCredentials)

	c, rec := jsonRequest(e, "/api/auth/login", `{"email":"rider@example.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
