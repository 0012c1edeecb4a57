// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing and compression
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"context"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/service"
)

// Pinger reports database reachability for the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler carries the service layer and transport-level dependencies of
// every route.
type Handler struct {
	services *service.Services

	// db is only used by /api/health to report reachability.
	db Pinger

	// uploadsDir backs the /uploads/ static file server.
	uploadsDir string

	logger *logger.Logger
}

// NewHandler constructs the transport layer over the given services.
func NewHandler(services *service.Services, db Pinger, uploadsDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		db:         db,
		uploadsDir: uploadsDir,
		logger:     logger,
	}
}
