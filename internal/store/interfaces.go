// Package store implements the PostgreSQL persistence layer: a bounded
// connection pool with explicit checkout/release semantics and the post and
// user repositories executed on top of checked-out connections.
package store

import (
	"context"

	"github.com/MKhiriev/go-post-board/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Querier is the minimal query surface repositories need from a database
// connection. It is satisfied by *pgxpool.Conn, so a dispatch worker can hand
// its exclusively owned connection straight to a repository method.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Conn is a single checked-out database connection. Release returns it to
// the pool; the holder must not use the connection afterwards.
type Conn interface {
	Querier
	Release()
}

// PostRepository executes the post table operations on a caller-provided
// connection. Methods never retain q beyond a single call.
type PostRepository interface {
	FetchAll(ctx context.Context, q Querier) ([]models.Post, error)
	Fetch(ctx context.Context, q Querier, postID int64) (models.Post, error)
	Create(ctx context.Context, q Querier, title, body string) (models.Post, error)
	Update(ctx context.Context, q Querier, postID int64, title, body string, published bool) (models.Post, error)
	Delete(ctx context.Context, q Querier, postID int64) (models.Post, error)
}

// UserRepository executes the user table operations on a caller-provided
// connection.
type UserRepository interface {
	Create(ctx context.Context, q Querier, username, passwordHash string) (models.User, error)
	FindByUsername(ctx context.Context, q Querier, username string) (models.User, error)
}
