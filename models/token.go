package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the fixed-shape claim set embedded in every issued token.
//
// The wire-visible payload is exactly {sub, email, exp, iat, iss}. Using a
// typed struct instead of a free-form claim map means an absent subject is
// rejected at decode time rather than discovered downstream.
type TokenClaims struct {
	// RegisteredClaims provides the standard JWT claim set (sub, exp, iat,
	// iss) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Email is a denormalized copy of the account's contact identifier,
	// carried for convenience only. It is never used for authorization.
	Email string `json:"email"`
}

// Token wraps an issued or verified JWT with convenience accessors.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in HTTP headers or stored on the client side.
// UserID is the "sub" claim of a verified token, cached so that callers do
// not need to reach into the claim set.
type Token struct {
	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// GetUserID returns the subject identifier carried by the token.
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetUserID() (string, error) {
	if t.Claims.Subject == "" {
		return "", errors.New("token has no subject claim")
	}
	return t.Claims.Subject, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
