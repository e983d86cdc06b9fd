package http

import (
	"net/http"

	"github.com/MKhiriev/go-upnode/internal/logger"
	"github.com/MKhiriev/go-upnode/internal/utils"
	"github.com/MKhiriev/go-upnode/models"
)

// upload always answers 200. Decode failures are reported through the
// "errors" and "error" fields of the JSON body.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result, err := h.services.UploadService.Ingest(r.Context(), models.UploadRequest{
		Path:          r.URL.Path,
		ContentType:   r.Header.Get("Content-Type"),
		ContentLength: r.ContentLength,
		Body:          r.Body,
	})
	if err != nil {
		result.Errors = true
		if result.Error == "" {
			result.Error = err.Error()
		}
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing upload result")
	}
}
