package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/utils"
)

// errorStatusMap assigns one deterministic wire status to every failure the
// lower layers can produce. store.ErrNotFound is a business outcome (404);
// authentication failures all collapse to 401 without revealing which check
// failed; hashing and dispatcher faults stay generic 500s.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrHashingFault:        http.StatusInternalServerError,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	utils.ErrInvalidSignature: http.StatusUnauthorized,
	utils.ErrMalformedToken:   http.StatusUnauthorized,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrMissingCredentials:         http.StatusUnauthorized,

	store.ErrNotFound:      http.StatusNotFound,
	store.ErrUsernameTaken: http.StatusConflict,

	store.ErrPoolExhausted:    http.StatusInternalServerError,
	store.ErrConnectFailed:    http.StatusInternalServerError,
	store.ErrQueryFailed:      http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
