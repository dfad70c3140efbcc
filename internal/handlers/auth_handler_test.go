package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthService hands out one fixed token for one whitelisted email.
type stubAuthService struct {
	email string
	token string
	admin bool
}

func (s *stubAuthService) Login(email string) (*dto.LoginResponse, error) {
	if strings.ToLower(strings.TrimSpace(email)) != s.email {
		return nil, apperrors.ErrAccessDenied
	}
	return &dto.LoginResponse{Token: s.token, User: &models.User{Email: s.email}}, nil
}

func (s *stubAuthService) AdminLogin(username, password string) (*dto.LoginResponse, error) {
	if username != "admin" || password != "s3cret" {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &dto.LoginResponse{Token: s.token}, nil
}

func (s *stubAuthService) ResolveSession(token string) (*dto.Identity, error) {
	if token != s.token {
		return nil, nil
	}
	return &dto.Identity{Email: s.email, IsAdmin: s.admin}, nil
}

func (s *stubAuthService) Logout(token string) error { return nil }

func newAuthTestRouter(stub *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SessionAuth(stub))

	h := NewAuthHandler(NewBaseHandler(validator.New()), stub)
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	stub := &stubAuthService{email: "alice@example.com", token: "tok-1"}

	t.Run("success", func(t *testing.T) {
		r := newAuthTestRouter(stub)
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", `{"email":"alice@example.com"}`, "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok-1"`)
	})

	t.Run("whitelist miss maps to 403 ACCESS_DENIED", func(t *testing.T) {
		r := newAuthTestRouter(stub)
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", `{"email":"mallory@example.com"}`, "")

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"ACCESS_DENIED"`)
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		r := newAuthTestRouter(stub)
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", `{"email":"not-an-email"}`, "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"VALIDATION_FAILED"`)
	})

	t.Run("missing body", func(t *testing.T) {
		r := newAuthTestRouter(stub)
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminLoginEndpoint(t *testing.T) {
	stub := &stubAuthService{email: "admin@admin.local", token: "tok-admin", admin: true}

	t.Run("bad credentials map to 401", func(t *testing.T) {
		r := newAuthTestRouter(stub)
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/admin-login", `{"username":"admin","password":"wrong"}`, "")

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"INVALID_CREDENTIALS"`)
	})

	t.Run("success", func(t *testing.T) {
		r := newAuthTestRouter(stub)
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/admin-login", `{"username":"admin","password":"s3cret"}`, "")
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSessionEndpoint(t *testing.T) {
	stub := &stubAuthService{email: "alice@example.com", token: "tok-1"}

	t.Run("valid token reports the identity", func(t *testing.T) {
		r := newAuthTestRouter(stub)
		w := doJSON(t, r, http.MethodGet, "/api/v1/auth/session", "", "tok-1")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice@example.com")
	})

	t.Run("unknown token reports a null identity", func(t *testing.T) {
		r := newAuthTestRouter(stub)
		w := doJSON(t, r, http.MethodGet, "/api/v1/auth/session", "", "bogus")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"identity":null`)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	stub := &stubAuthService{email: "alice@example.com", token: "tok-1"}

	t.Run("requires a token", func(t *testing.T) {
		r := newAuthTestRouter(stub)
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", "", "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("with a token", func(t *testing.T) {
		r := newAuthTestRouter(stub)
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", "", "tok-1")
		require.Equal(t, http.StatusOK, w.Code)
	})
}
