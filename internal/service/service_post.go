package service

import (
	"context"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/models"
)

// postService is a thin typed pass-through from the transport layer to the
// dispatcher. Business outcomes (store.ErrNotFound) and faults travel
// through unchanged; the handler layer maps them to wire responses.
type postService struct {
	dispatcher Dispatcher
	logger     *logger.Logger
}

// NewPostService constructs a PostService on top of the shared dispatcher.
func NewPostService(dispatcher Dispatcher, logger *logger.Logger) PostService {
	return &postService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (p *postService) Posts(ctx context.Context) ([]models.Post, error) {
	return p.dispatcher.FetchPosts(ctx)
}

func (p *postService) Post(ctx context.Context, postID int64) (models.Post, error) {
	return p.dispatcher.FetchPost(ctx, postID)
}

func (p *postService) Create(ctx context.Context, title, body string) (models.Post, error) {
	if title == "" {
		return models.Post{}, ErrInvalidDataProvided
	}

	return p.dispatcher.CreatePost(ctx, title, body)
}

func (p *postService) Update(ctx context.Context, postID int64, title, body string, published bool) (models.Post, error) {
	if title == "" {
		return models.Post{}, ErrInvalidDataProvided
	}

	return p.dispatcher.UpdatePost(ctx, postID, title, body, published)
}

func (p *postService) Delete(ctx context.Context, postID int64) (models.Post, error) {
	return p.dispatcher.DeletePost(ctx, postID)
}
