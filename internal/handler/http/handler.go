// Package http implements the HTTP transport layer of the document server.
// It provides middleware, route handlers, and the WebSocket snapshot feed
// for live collection subscriptions. Authentication, logging, tracing, and
// compression concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	hub      *snapshotHub

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hub:      newSnapshotHub(logger),
		logger:   logger,
	}
}
