package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// usersTable is resolved from the model so the statements below cannot drift
// from the table the model is mapped to.
var usersTable = models.User{}.TableName()

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository].
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{logger: logger}
}

// Create persists a new user record and returns the fully populated
// [models.User] with the server-assigned ID.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as [ErrQueryFailed].
func (r *userRepository) Create(ctx context.Context, q Querier, username, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(usersTable).
		Columns("username", "password_hash").
		Values(username, passwordHash).
		Suffix("RETURNING id, username, password_hash").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err := q.QueryRow(ctx, query, args...).Scan(&user.ID, &user.Username, &user.PasswordHash); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameTaken
		}
		log.Err(err).Str("func", "*userRepository.Create").Msg("error creating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	return user, nil
}

// FindByUsername retrieves the user record with the given username, including
// the stored password hash for the credential verifier. A missing user is the
// distinguished [ErrNotFound] outcome.
func (r *userRepository) FindByUsername(ctx context.Context, q Querier, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("id", "username", "password_hash").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err := q.QueryRow(ctx, query, args...).Scan(&user.ID, &user.Username, &user.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	return user, nil
}

// postgresError extracts the PostgreSQL error code from a driver error,
// or returns "" when the error did not originate from the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
