package service

import (
	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
)

// Services aggregates every application service for injection into the
// transport layer.
type Services struct {
	AuthService AuthService
	PostService PostService
}

// NewServices wires the services on top of the shared dispatcher.
func NewServices(dispatcher Dispatcher, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(dispatcher, cfg, logger),
		PostService: NewPostService(dispatcher, logger),
	}
}
