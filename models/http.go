package models

// Status values used in the generic JSON response envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// StatusResponse is the generic JSON envelope for status messages:
//
//	{ "status": "success"|"error", "message": "<text>" }
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewSuccessResponse builds a success envelope with the given message.
func NewSuccessResponse(message string) StatusResponse {
	return StatusResponse{Status: StatusSuccess, Message: message}
}

// NewErrorResponse builds an error envelope with the given message.
func NewErrorResponse(message string) StatusResponse {
	return StatusResponse{Status: StatusError, Message: message}
}
