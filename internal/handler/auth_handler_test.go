package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"motohub/internal/auth"
	"motohub/internal/model"
	"motohub/internal/service"
)

// fakeAuthService wires a real JWT service behind the AuthService interface
// without touching the store.
type fakeAuthService struct {
	jwt *auth.JWTService
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, time.Time, *model.AdminUser, error) {
	token, expiry, err := f.jwt.GenerateSessionToken(1, username)
	return token, expiry, &model.AdminUser{ID: 1, Username: username}, err
}

func (f *fakeAuthService) Verify(token string) (*auth.Claims, bool) {
	claims, err := f.jwt.ValidateToken(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func (f *fakeAuthService) SeedAdmin(ctx context.Context, username, password string) error {
	return nil
}

var _ service.AuthService = (*fakeAuthService)(nil)

func TestAuthHandler_Verify(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	h := NewAuthHandler(&fakeAuthService{jwt: jwtService})
	e := echo.New()

	doVerify := func(body string) (*httptest.ResponseRecorder, VerifyResponse) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/verify", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, h.Verify(c))

		var resp VerifyResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return rec, resp
	}

	t.Run("fresh token is valid", func(t *testing.T) {
		token, _, err := jwtService.GenerateSessionToken(1, "admin")
		assert.NoError(t, err)

		rec, resp := doVerify(`{"token":"` + token + `"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Valid)
		assert.NotNil(t, resp.User)
	})

	t.Run("malformed token is 200 with valid false", func(t *testing.T) {
		rec, resp := doVerify(`{"token":"garbage"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, resp.Valid)
		assert.Nil(t, resp.User)
	})

	t.Run("foreign-secret token is 200 with valid false", func(t *testing.T) {
		other := auth.NewJWTService("other-secret")
		token, _, err := other.GenerateSessionToken(1, "admin")
		assert.NoError(t, err)

		rec, resp := doVerify(`{"token":"` + token + `"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, resp.Valid)
	})

	t.Run("garbage body is 200 with valid false", func(t *testing.T) {
		rec, resp := doVerify(`{{{`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, resp.Valid)
	})
}
