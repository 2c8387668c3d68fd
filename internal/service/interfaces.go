package service

import (
	"context"

	"github.com/MKhiriev/go-post-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Dispatcher is the typed surface of the dispatch worker pool consumed by
// the services. Satisfied by *dispatch.Dispatcher.
type Dispatcher interface {
	FetchPosts(ctx context.Context) ([]models.Post, error)
	FetchPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, title, body string) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, title, body string, published bool) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) (models.Post, error)
	CreateUser(ctx context.Context, username, passwordHash string) (models.User, error)
	FetchUserByUsername(ctx context.Context, username string) (models.User, error)
}

// AuthService handles registration, credential verification, and the bearer
// token lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.TokenClaims, error)
}

// PostService exposes the post CRUD operations to the transport layer.
type PostService interface {
	Posts(ctx context.Context) ([]models.Post, error)
	Post(ctx context.Context, postID int64) (models.Post, error)
	Create(ctx context.Context, title, body string) (models.Post, error)
	Update(ctx context.Context, postID int64, title, body string, published bool) (models.Post, error)
	Delete(ctx context.Context, postID int64) (models.Post, error)
}
