package property

import (
	"log/slog"

	"holdings/internal/property/handler"
	"holdings/internal/property/metrics"
	"holdings/internal/property/service"
)

// Service exposes property registry orchestration.
type Service = service.Service

// Handler wires HTTP endpoints to the property service.
type Handler = handler.Handler

// Metrics holds the module's Prometheus instruments.
type Metrics = metrics.Metrics

// NewService constructs the property service with required dependencies.
func NewService(store service.Store, hasher service.Hasher, opts ...service.Option) *Service {
	return service.New(store, hasher, opts...)
}

// NewHandler constructs an HTTP handler for property routes.
func NewHandler(s *Service, logger *slog.Logger, m *Metrics) *Handler {
	return handler.New(s, logger, m)
}
