package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"todokeeper/internal/logger"
	"todokeeper/internal/service"
	"todokeeper/internal/utils"
)

// unauthorizedMessage is the single user-visible rejection body for every
// authentication failure. The internal reason (expired, invalid signature,
// missing subject, malformed header) stays in the logs only.
const unauthorizedMessage = "invalid or expired token"

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success —
// stores the authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not a bearer-scheme credential
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token has expired ([service.ErrTokenExpired]).
//   - The token carries no usable subject ([service.ErrTokenMissingSubject]).
//   - The token is otherwise invalid or cannot be parsed.
//
// Every rejection carries a "WWW-Authenticate: Bearer" challenge header and
// the same generic body; which claim failed is never leaked to the caller.
// The middleware touches no storage: identity is derived purely from the
// token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			unauthorized(w)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				log.Err(err).Msg("token expired")
			case errors.Is(err, service.ErrTokenMissingSubject):
				log.Err(err).Msg("token has no subject claim")
			default:
				log.Err(err).Msg("error occurred during parsing token")
			}
			unauthorized(w)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// unauthorized writes the uniform authentication rejection: 401 with the
// bearer challenge header and the generic message.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, unauthorizedMessage, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header does not consist of a
//     "Bearer" scheme (case-insensitive) followed by a credential.
//   - [ErrEmptyToken] — if the scheme is present but the token value is an
//     empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		if len(parts) == 1 && strings.EqualFold(parts[0], "Bearer") {
			return "", ErrEmptyToken
		}
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
