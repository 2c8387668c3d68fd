package http

import (
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
)

// respondError logs err and writes the generic error envelope with the
// status assigned by the error mapper. The message is chosen by the call
// site and must never echo internal error details to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger.FromRequest(r).Err(err).Msg(message)
	utils.WriteJSON(w, models.NewErrorResponse(message), statusFromError(err))
}
