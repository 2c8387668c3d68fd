package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/jackc/pgx/v5"
)

// psql builds statements with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postsTable is resolved from the model so the statements below cannot drift
// from the table the model is mapped to.
var postsTable = models.Post{}.TableName()

// postColumns is the canonical column order shared by every post statement.
var postColumns = []string{"id", "title", "body", "published"}

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
//
// Every method runs a single statement on the connection supplied by the
// caller; the dispatch worker owns that connection for exactly one operation.
// Mutating statements use RETURNING so server-assigned values (id, the
// published default) are round-tripped to the caller, and so the
// zero-matched-row case surfaces as the distinguished [ErrNotFound] outcome.
type postRepository struct {
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository].
func NewPostRepository(logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{logger: logger}
}

// FetchAll returns every post in insertion order.
// An empty table is a valid result, not an error.
func (r *postRepository) FetchAll(ctx context.Context, q Querier) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(postColumns...).From(postsTable).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FetchAll").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.Published); err != nil {
			log.Err(err).Str("func", "*postRepository.FetchAll").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.FetchAll").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	return posts, nil
}

// Fetch returns the post with the given id, or [ErrNotFound].
func (r *postRepository) Fetch(ctx context.Context, q Querier, postID int64) (models.Post, error) {
	query, args, err := psql.Select(postColumns...).From(postsTable).Where(sq.Eq{"id": postID}).ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanPost(ctx, q.QueryRow(ctx, query, args...), "*postRepository.Fetch")
}

// Create inserts a new post. The published flag is left to the database
// default (false) and round-tripped back via RETURNING.
func (r *postRepository) Create(ctx context.Context, q Querier, title, body string) (models.Post, error) {
	query, args, err := psql.Insert(postsTable).
		Columns("title", "body").
		Values(title, body).
		Suffix("RETURNING id, title, body, published").
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanPost(ctx, q.QueryRow(ctx, query, args...), "*postRepository.Create")
}

// Update sets title, body, and published on the single matching post and
// returns the post-update record. Zero matched rows surface as [ErrNotFound].
func (r *postRepository) Update(ctx context.Context, q Querier, postID int64, title, body string, published bool) (models.Post, error) {
	query, args, err := psql.Update(postsTable).
		Set("title", title).
		Set("body", body).
		Set("published", published).
		Where(sq.Eq{"id": postID}).
		Suffix("RETURNING id, title, body, published").
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanPost(ctx, q.QueryRow(ctx, query, args...), "*postRepository.Update")
}

// Delete removes the single matching post and returns its last-known
// snapshot for confirmation. Zero matched rows surface as [ErrNotFound].
func (r *postRepository) Delete(ctx context.Context, q Querier, postID int64) (models.Post, error) {
	query, args, err := psql.Delete(postsTable).
		Where(sq.Eq{"id": postID}).
		Suffix("RETURNING id, title, body, published").
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanPost(ctx, q.QueryRow(ctx, query, args...), "*postRepository.Delete")
}

// scanPost scans one post row, mapping pgx.ErrNoRows to the distinguished
// [ErrNotFound] outcome and every other failure to [ErrQueryFailed].
func (r *postRepository) scanPost(ctx context.Context, row pgx.Row, fn string) (models.Post, error) {
	log := logger.FromContext(ctx)

	var post models.Post
	if err := row.Scan(&post.ID, &post.Title, &post.Body, &post.Published); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Post{}, ErrNotFound
		}
		log.Err(err).Str("func", fn).Msg("error scanning post row")
		return models.Post{}, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	return post, nil
}
