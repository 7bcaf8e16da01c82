package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"todokeeper/internal/service"
	"todokeeper/internal/utils"
	"todokeeper/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:      "scheme is case-insensitive",
			header:    "bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "scheme without token",
			header:  "Bearer",
			wantErr: ErrEmptyToken,
		},
		{
			name:    "non-Bearer scheme",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "only spaces",
			header:  "   ",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "extra parts",
			header:  "Bearer token extra-part",
			wantErr: ErrInvalidAuthorizationHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		parseTokenFn func(ctx context.Context, s string) (models.Token, error)
		wantStatus   int
		wantNext     bool
		wantUserID   string
	}{
		{
			name:       "missing Authorization header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed Authorization header",
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired-token",
			parseTokenFn: func(ctx context.Context, s string) (models.Token, error) {
				return models.Token{}, service.ErrTokenExpired
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer tampered-token",
			parseTokenFn: func(ctx context.Context, s string) (models.Token, error) {
				return models.Token{}, service.ErrTokenInvalid
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without subject",
			authHeader: "Bearer subjectless-token",
			parseTokenFn: func(ctx context.Context, s string) (models.Token, error) {
				return models.Token{}, service.ErrTokenMissingSubject
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			parseTokenFn: func(ctx context.Context, s string) (models.Token, error) {
				return models.Token{UserID: "user-42"}, nil
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
			wantUserID: "user-42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAuthService{parseTokenFn: tt.parseTokenFn}, nil)

			nextCalled := false
			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				assert.Equal(t, tt.wantUserID, gotUserID)
			}
		})
	}
}

// TestAuth_Middleware_RejectionShape verifies the uniform rejection: the
// bearer challenge header, and a body that never reveals which check failed.
func TestAuth_Middleware_RejectionShape(t *testing.T) {
	failures := map[string]func(ctx context.Context, s string) (models.Token, error){
		"expired": func(ctx context.Context, s string) (models.Token, error) {
			return models.Token{}, service.ErrTokenExpired
		},
		"invalid": func(ctx context.Context, s string) (models.Token, error) {
			return models.Token{}, service.ErrTokenInvalid
		},
		"missing subject": func(ctx context.Context, s string) (models.Token, error) {
			return models.Token{}, service.ErrTokenMissingSubject
		},
	}

	var bodies []string
	for name, parseFn := range failures {
		t.Run(name, func(t *testing.T) {
			h := newTestHandler(&mockAuthService{parseTokenFn: parseFn}, nil)
			rr := executeAuth(h, "Bearer some-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			assert.Contains(t, rr.Body.String(), unauthorizedMessage)
			bodies = append(bodies, rr.Body.String())
		})
	}

	// All failure modes produce the identical body.
	for i := 1; i < len(bodies); i++ {
		assert.Equal(t, bodies[0], bodies[i])
	}
}
