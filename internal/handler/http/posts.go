package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/go-chi/chi/v5"
)

// PostRequest is the JSON body accepted by the create and update routes.
// The published flag is ignored on create: new posts always start
// unpublished and the stored default is round-tripped in the response.
type PostRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

func (h *Handler) fetchPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.services.PostService.Posts(ctx)
	if err != nil {
		respondError(w, r, err, "unable to retrieve posts")
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) fetchPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	postID, err := postIDFromURL(r)
	if err != nil {
		respondError(w, r, service.ErrInvalidDataProvided, "invalid post id")
		return
	}

	post, err := h.services.PostService.Post(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, r, err, fmt.Sprintf("no post has this id: %d", postID))
			return
		}
		respondError(w, r, err, "unable to retrieve the post")
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body PostRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse("invalid JSON was passed"), http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.Create(ctx, body.Title, body.Body)
	if err != nil {
		respondError(w, r, err, "failed to create post")
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := postIDFromURL(r)
	if err != nil {
		respondError(w, r, service.ErrInvalidDataProvided, "invalid post id")
		return
	}

	var body PostRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse("invalid JSON was passed"), http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.Update(ctx, postID, body.Title, body.Body, body.Published)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, r, err, fmt.Sprintf("no post has this id: %d", postID))
			return
		}
		respondError(w, r, err, "failed to update post")
		return
	}

	// Attribute the mutation to the token holder placed in the context by the
	// auth middleware.
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		log.Debug().Int64("user_id", userID).Int64("post_id", post.ID).Msg("post updated")
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	postID, err := postIDFromURL(r)
	if err != nil {
		respondError(w, r, service.ErrInvalidDataProvided, "invalid post id")
		return
	}

	post, err := h.services.PostService.Delete(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, r, err, fmt.Sprintf("no post has this id: %d", postID))
			return
		}
		respondError(w, r, err, "failed to delete post")
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func postIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
