package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
)

// authService is the concrete implementation of AuthService.
// It hashes credentials with argon2id keyed by the server-side hash key,
// resolves users through the dispatcher, and signs HS256 bearer tokens.
type authService struct {
	// dispatcher executes the user-table operations on the worker pool.
	dispatcher Dispatcher

	// hashKey is the server secret mixed into every password hash. Must stay
	// identical across restarts or stored hashes stop verifying.
	hashKey string

	// tokenSignKey is the symmetric secret used to sign and verify tokens.
	tokenSignKey string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given dispatcher and
// populated with the security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(dispatcher Dispatcher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		dispatcher:   dispatcher,
		hashKey:      cfg.PasswordHashKey,
		tokenSignKey: cfg.TokenSignKey,
		logger:       logger,
	}
}

// Register creates a new user account.
//
// The plaintext password is hashed before the create message is submitted,
// so the dispatcher and the store only ever see the opaque hash.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrHashingFault if the hasher fails.
//   - store.ErrUsernameTaken passed through from the repository.
func (a *authService) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password, a.hashKey)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingFault, err)
	}

	user, err := a.dispatcher.CreateUser(ctx, username, passwordHash)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, err
	}

	return user, nil
}

// Login authenticates an existing user and issues a fresh bearer token.
//
// The account is resolved through the dispatcher's fetch-by-username
// operation and the supplied password is verified against the stored hash in
// constant time. A missing user and a wrong password are deliberately
// indistinguishable to the caller: both collapse to ErrInvalidCredentials.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials on unknown user or failed verification.
//   - ErrHashingFault if the stored hash is unreadable (a server fault, not
//     a login outcome).
//   - Any dispatcher-side fault passed through unchanged.
func (a *authService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	user, err := a.dispatcher.FetchUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug().Str("username", username).Msg("login attempt for unknown user")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user lookup failed")
		return models.Token{}, err
	}

	ok, err := utils.VerifyPassword(user.PasswordHash, password, a.hashKey)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("stored password hash is unreadable")
		return models.Token{}, fmt.Errorf("%w: %w", ErrHashingFault, err)
	}
	if !ok {
		log.Debug().Int64("id", user.ID).Msg("password verification failed")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.IssueToken(user.ID, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw bearer token string, returning its
// claims. Signature and structural failures pass through from
// [utils.ValidateToken] so the transport layer can map both to unauthorized.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.TokenClaims, error) {
	return utils.ValidateToken(tokenString, a.tokenSignKey)
}
