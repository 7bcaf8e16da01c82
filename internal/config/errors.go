package config

import "errors"

var (
	// ErrWeakAuthSecret is returned when the token signing secret is shorter
	// than MinAuthSecretLen. Fatal at startup.
	ErrWeakAuthSecret = errors.New("auth secret is too short")

	// ErrUnknownTokenAlgorithm is returned when the configured signing
	// algorithm is not in the accepted HMAC family.
	ErrUnknownTokenAlgorithm = errors.New("unknown token signing algorithm")

	// ErrInvalidTokenExpiry is returned for a negative token lifetime.
	ErrInvalidTokenExpiry = errors.New("token expiry must not be negative")

	ErrInvalidStorageConfigs = errors.New("invalid storage configs")
	ErrInvalidServerConfigs  = errors.New("invalid server configs")
)
