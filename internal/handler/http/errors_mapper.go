package http

import (
	"errors"
	"net/http"

	"github.com/harborline/moorage/internal/adapter"
	"github.com/harborline/moorage/internal/service"
	"github.com/harborline/moorage/internal/store"
	"github.com/harborline/moorage/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrAccountNotActivated:     http.StatusForbidden,
	service.ErrAlreadyActive:           http.StatusBadRequest,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists:   http.StatusConflict,
	store.ErrNoAccountWasFound:    http.StatusNotFound,
	store.ErrCodeInvalidOrExpired: http.StatusBadRequest,
	store.ErrNoArchiveWasFound:    http.StatusNotFound,

	adapter.ErrNotificationFailed: http.StatusBadGateway,
	adapter.ErrPhotoSearchFailed:  http.StatusBadGateway,
	adapter.ErrImageFetchFailed:   http.StatusBadGateway,
	adapter.ErrObjectStoreFailed:  http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps a service-layer error to its HTTP status and writes the
// uniform {error:true, message, status} envelope. Internal errors are not
// echoed to the caller; they keep the generic status text as the message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteError(w, message, status)
}
