package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
)

// RegisterRequest is the JSON body accepted by the registration route.
// The plaintext password never travels further than the auth service.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse("invalid JSON was passed"), http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, body.Username, body.Password)
	if err != nil {
		respondError(w, r, err, "failed to register user")
		return
	}

	log.Debug().Int64("id", user.ID).Str("username", user.Username).Msg("user registered")

	// PasswordHash carries json:"-", so the response is {id, username} only.
	utils.WriteJSON(w, user, http.StatusOK)
}

// login authenticates via basic auth and returns a fresh bearer token, both
// in the Authorization response header and in the JSON body.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, password, ok := r.BasicAuth()
	if !ok {
		respondError(w, r, ErrMissingCredentials, "missing credentials")
		return
	}

	token, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		respondError(w, r, err, loginFailureMessage(err))
		return
	}

	log.Debug().Int64("id", token.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, token, http.StatusOK)
}

// loginFailureMessage reserves the credential-rejection wording for failures
// caused by the supplied credentials. Server-side faults (an unreadable stored
// hash, dispatcher or storage failures) must never masquerade as a wrong
// password, so they get a generic message instead.
func loginFailureMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidDataProvided),
		errors.Is(err, ErrMissingCredentials):
		return "invalid username/password"
	default:
		return "internal server error"
	}
}
