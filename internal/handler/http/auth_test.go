package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"todokeeper/internal/service"
	"todokeeper/internal/store"
	"todokeeper/models"
)

// ---- signup ----

func TestSignup_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		signupFn   func(ctx context.Context, req models.SignupRequest) (models.User, error)
		wantStatus int
	}{
		{
			name: "successful registration",
			body: `{"email":"alice@example.com","password":"secret","name":"Alice"}`,
			signupFn: func(ctx context.Context, req models.SignupRequest) (models.User, error) {
				return models.User{UserID: "user-1", Email: req.Email, Name: req.Name}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "broken JSON",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid data",
			body: `{"email":"","password":""}`,
			signupFn: func(ctx context.Context, req models.SignupRequest) (models.User, error) {
				return models.User{}, service.ErrInvalidDataProvided
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "email already registered",
			body: `{"email":"alice@example.com","password":"secret"}`,
			signupFn: func(ctx context.Context, req models.SignupRequest) (models.User, error) {
				return models.User{}, store.ErrEmailAlreadyExists
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "storage failure",
			body: `{"email":"alice@example.com","password":"secret"}`,
			signupFn: func(ctx context.Context, req models.SignupRequest) (models.User, error) {
				return models.User{}, errBoom
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAuthService{signupFn: tt.signupFn}, nil)

			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.body)))
			rr := httptest.NewRecorder()
			h.signup(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestSignup_ResponseOmitsPasswordHash(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		signupFn: func(ctx context.Context, req models.SignupRequest) (models.User, error) {
			return models.User{UserID: "user-1", Email: req.Email, PasswordHash: "$2a$12$hash"}, nil
		},
	}, nil)

	body := `{"email":"alice@example.com","password":"secret"}`
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))
	rr := httptest.NewRecorder()
	h.signup(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hash")
	assert.NotContains(t, rr.Body.String(), "password")
}

// ---- login ----

func TestLogin_Success(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: "user-1", Email: req.Email}, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token", UserID: user.UserID}, nil
		},
	}, nil)

	body := `{"email":"alice@example.com","password":"secret"}`
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))
	rr := httptest.NewRecorder()
	h.login(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "user-1", resp.User.UserID)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginFn    func(ctx context.Context, req models.LoginRequest) (models.User, error)
		wantStatus int
	}{
		{
			name:       "broken JSON",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "wrong credentials",
			body: `{"email":"alice@example.com","password":"wrong"}`,
			loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
				return models.User{}, service.ErrInvalidCredentials
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing fields",
			body: `{}`,
			loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
				return models.User{}, service.ErrInvalidDataProvided
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "corrupted stored hash is an internal failure",
			body: `{"email":"alice@example.com","password":"secret"}`,
			loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
				return models.User{}, errBoom
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAuthService{loginFn: tt.loginFn}, nil)

			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body)))
			rr := httptest.NewRecorder()
			h.login(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestLogin_TokenCreationFailure(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: "user-1"}, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}, nil)

	body := `{"email":"alice@example.com","password":"secret"}`
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))
	rr := httptest.NewRecorder()
	h.login(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ---- me ----

func TestMe_Success(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		getUserFn: func(ctx context.Context, userID string) (models.User, error) {
			return models.User{UserID: userID, Email: "alice@example.com"}, nil
		},
	}, nil)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), "user-1")
	rr := httptest.NewRecorder()
	h.me(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "user-1", user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestMe_NoIdentityInContext(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	rr := httptest.NewRecorder()
	h.me(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMe_AccountVanished(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		getUserFn: func(ctx context.Context, userID string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}, nil)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), "user-gone")
	rr := httptest.NewRecorder()
	h.me(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
