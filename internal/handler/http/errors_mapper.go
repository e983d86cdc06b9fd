package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-upnode/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrFileNotFound:    http.StatusNotFound,
	store.ErrPathOutsideRoot: http.StatusNotFound,

	store.ErrReadingFile:       http.StatusInternalServerError,
	store.ErrReadingDirectory:  http.StatusInternalServerError,
	store.ErrCreatingDirectory: http.StatusInternalServerError,
	store.ErrCreatingFile:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
