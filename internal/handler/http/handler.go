// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and compression
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"context"

	"todokeeper/internal/logger"
	"todokeeper/internal/service"
)

// Pinger is the health-check view of the database connection.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	db       Pinger

	logger *logger.Logger
}

func NewHandler(services *service.Services, db Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		db:       db,
		logger:   logger,
	}
}
