package dispatch

import (
	"context"

	"github.com/MKhiriev/go-post-board/internal/store"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dispatch_mock.go -package=mock

// ConnSource grants workers exclusive database connections for the duration
// of one message. Satisfied by [store.Pool].
type ConnSource interface {
	Checkout(ctx context.Context) (store.Conn, error)
}
