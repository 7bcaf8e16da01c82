package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"todokeeper/models"
)

// ErrTokenMissingSubject is returned by ValidateAndParseJWTToken when a token
// carries a valid signature but no usable "sub" claim. Such a token must
// never yield an authenticated identity.
var ErrTokenMissingSubject = errors.New("token has empty subject claim")

// GenerateJWTToken creates a signed JWT with the fixed claim shape used by
// the API.
//
// The token payload is exactly:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account's unique id
//   - email          : denormalized contact identifier of the account
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// algorithm selects the HMAC signing method ("HS256", "HS384", "HS512") and
// must match the value used at verification time.
//
// Returns an error if any required parameter is empty or zero, if the
// algorithm is unknown, or if signing fails.
func GenerateJWTToken(issuer, userID, email string, tokenDuration time.Duration, signKey, algorithm string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return models.Token{}, fmt.Errorf("unknown signing algorithm: %q", algorithm)
	}

	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Signing method check against the configured algorithm
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Failure modes are distinguishable with errors.Is:
//   - an elapsed expiry wraps [jwt.ErrTokenExpired]
//   - a missing or empty subject returns [ErrTokenMissingSubject]
//   - anything else (bad signature, malformed structure, wrong algorithm or
//     issuer) is a generic validation error
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, algorithm string) (models.Token, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{algorithm}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrTokenMissingSubject
	}

	return models.Token{Claims: *claims, UserID: claims.Subject}, nil
}
