package http

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Conte777/NewsFlow/services/announcement-service/pkg/httputil"
)

const checkTimeout = 3 * time.Second

// DatabasePinger checks database connectivity
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

// PublisherHealthChecker reports whether event publishing works
type PublisherHealthChecker interface {
	Healthy() bool
}

// IndexHealthChecker reports the search index document count
type IndexHealthChecker interface {
	Count() (uint64, error)
}

// HealthStatus represents the overall health status
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// ComponentHealth represents health status of a single component
type ComponentHealth struct {
	Name     string `json:"name"`
	Healthy  bool   `json:"healthy"`
	Critical bool   `json:"critical"`
	Message  string `json:"message,omitempty"`
}

// HealthResponse represents the JSON response for health check
type HealthResponse struct {
	Status     HealthStatus      `json:"status"`
	Service    string            `json:"service"`
	Timestamp  time.Time         `json:"timestamp"`
	Components []ComponentHealth `json:"components"`
}

// HealthHandler handles health check requests
type HealthHandler struct {
	service   string
	db        DatabasePinger
	publisher PublisherHealthChecker
	index     IndexHealthChecker
	logger    zerolog.Logger
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(
	service string,
	db DatabasePinger,
	publisher PublisherHealthChecker,
	index IndexHealthChecker,
	logger zerolog.Logger,
) *HealthHandler {
	return &HealthHandler{
		service:   service,
		db:        db,
		publisher: publisher,
		index:     index,
		logger:    logger.With().Str("handler", "health").Logger(),
	}
}

// Handle handles GET /health
func (h *HealthHandler) Handle(ctx *fasthttp.RequestCtx) {
	checkCtx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	components := h.checkComponents(checkCtx)
	status := determineOverallStatus(components)

	logEvent := h.logger.Debug()
	if status == HealthStatusUnhealthy {
		logEvent = h.logger.Warn()
	} else if status == HealthStatusDegraded {
		logEvent = h.logger.Info()
	}
	logEvent.
		Str("status", string(status)).
		Interface("components", components).
		Msg("Health check completed")

	httputil.WriteHealthResponse(ctx, HealthResponse{
		Status:     status,
		Service:    h.service,
		Timestamp:  time.Now().UTC(),
		Components: components,
	}, status != HealthStatusUnhealthy)
}

func (h *HealthHandler) checkComponents(ctx context.Context) []ComponentHealth {
	components := make([]ComponentHealth, 0, 3)

	db := ComponentHealth{Name: "database", Healthy: true, Critical: true}
	if err := h.db.PingContext(ctx); err != nil {
		db.Healthy = false
		db.Message = err.Error()
	}
	components = append(components, db)

	publisher := ComponentHealth{Name: "kafka_producer", Healthy: h.publisher.Healthy()}
	if !publisher.Healthy {
		publisher.Message = "last event could not be published"
	}
	components = append(components, publisher)

	index := ComponentHealth{Name: "search_index", Healthy: true}
	if _, err := h.index.Count(); err != nil {
		index.Healthy = false
		index.Message = err.Error()
	}
	components = append(components, index)

	return components
}

// determineOverallStatus is unhealthy when a critical component fails, degraded when any other does
func determineOverallStatus(components []ComponentHealth) HealthStatus {
	status := HealthStatusHealthy
	for _, c := range components {
		if c.Healthy {
			continue
		}
		if c.Critical {
			return HealthStatusUnhealthy
		}
		status = HealthStatusDegraded
	}
	return status
}
