package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool owns a fixed-capacity set of reusable database connections.
//
// Connections are opened lazily up to the configured maximum and reused
// across operations. Checkout blocks up to the configured timeout and then
// fails with [ErrPoolExhausted]; a network-level failure while opening a new
// connection fails with [ErrConnectFailed]. The Pool is created once at
// startup, shared by every dispatch worker, and closed at process shutdown.
type Pool struct {
	pool            *pgxpool.Pool
	checkoutTimeout time.Duration
	logger          *logger.Logger
}

// NewPool parses the DSN and constructs the shared connection pool.
// No connection is dialed until the first checkout.
func NewPool(ctx context.Context, cfg config.DB, log *logger.Logger) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewPool").Msg("error parsing database DSN")
		return nil, fmt.Errorf("error parsing database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Err(err).Str("func", "NewPool").Msg("error creating connection pool")
		return nil, fmt.Errorf("error creating connection pool: %w", err)
	}

	log.Info().
		Int32("max_conns", cfg.MaxConns).
		Dur("checkout_timeout", cfg.CheckoutTimeout).
		Msg("connection pool created")

	return &Pool{
		pool:            pool,
		checkoutTimeout: cfg.CheckoutTimeout,
		logger:          log,
	}, nil
}

// Checkout borrows one connection from the pool, waiting up to the configured
// checkout timeout. The caller owns the connection exclusively until Release.
func (p *Pool) Checkout(ctx context.Context) (Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, p.checkoutTimeout)
	defer cancel()

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrPoolExhausted
		}
		return nil, fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}

	return conn, nil
}

// Ping verifies database connectivity. The health route uses it to answer
// readiness checks; the pool itself connects lazily.
func (p *Pool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close tears the pool down, closing every idle connection and waiting for
// checked-out ones to be released.
func (p *Pool) Close() {
	p.logger.Info().Msg("closing connection pool")
	p.pool.Close()
}
