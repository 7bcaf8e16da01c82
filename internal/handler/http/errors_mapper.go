package http

import (
	"errors"
	"net/http"

	"todokeeper/internal/service"
	"todokeeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrValidationTitleRequired:  http.StatusBadRequest,
	service.ErrValidationDescriptionLen: http.StatusBadRequest,
	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrTokenExpired:             http.StatusUnauthorized,
	service.ErrTokenInvalid:             http.StatusUnauthorized,
	service.ErrTokenMissingSubject:      http.StatusUnauthorized,
	service.ErrTaskAccessForbidden:      http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrTaskNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusFromError resolves a wrapped service or store error to an HTTP
// status. Unknown errors — including hash corruption from the credential
// layer — fall through to 500 so they are never silently downgraded to a
// client failure.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
