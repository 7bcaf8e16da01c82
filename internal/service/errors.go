package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single rejection for every failed login:
	// unknown email, account without a credential record, or wrong password.
	// Deliberately generic so the response does not reveal which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenExpired means the token's signature was valid but its expiry
	// has elapsed. Distinguished from ErrTokenInvalid for logging only; both
	// surface as the same user-visible rejection.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid covers a bad signature, malformed structure, wrong
	// signing algorithm, or wrong issuer.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenMissingSubject means the token verified but carries no usable
	// subject identity. Never treated as a successful authentication.
	ErrTokenMissingSubject = errors.New("token has no subject identity")

	// ErrTaskAccessForbidden is returned when an authenticated requester
	// targets a task owned by a different account. Distinct from the
	// not-found outcome: the response reveals the task exists but does not
	// grant access.
	ErrTaskAccessForbidden = errors.New("access to another user's task is forbidden")

	ErrValidationTitleRequired  = errors.New("task title must be 1-200 characters after trimming")
	ErrValidationDescriptionLen = errors.New("task description must be at most 1000 characters")
)
