package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidSyncRequest:    http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrInvalidChange: http.StatusBadRequest,
	store.ErrStoreClosed:   http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
