package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/internal/utils"
)

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	served, err := h.services.FileService.Lookup(r.Context(), r.URL.Path)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusNotFound {
			_, _ = utils.WriteText(w, notFoundMessage(served.Pathname), status)
			return
		}

		log.Err(err).Str("path", served.Pathname).Msg("error serving file")
		_, _ = utils.WriteText(w, err.Error(), status)
		return
	}

	if served.IsDir {
		// Listings answer 404 with a JSON body; existing clients depend on it.
		if _, err = utils.WriteJSON(w, served.Entries, http.StatusNotFound); err != nil {
			log.Err(err).Str("path", served.Pathname).Msg("error writing directory listing")
		}
		return
	}

	w.Header().Set("Content-Type", served.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(served.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(served.Content); err != nil {
		log.Err(err).Str("path", served.Pathname).Msg("error writing file content")
	}
}

func (h *Handler) favicon(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/x-icon")
	w.WriteHeader(http.StatusOK)
}
