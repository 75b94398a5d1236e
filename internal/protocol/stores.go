package protocol

import (
	"context"

	"github.com/myacars/myacars/internal/model"
	"github.com/myacars/myacars/internal/queue"
)

// The dispatcher talks to storage through these interfaces so tests can
// substitute in-memory fakes. The production implementations live in
// internal/repository; their sentinel errors (ErrSessionNotFound,
// ErrFlightNotFound) are what the dispatcher maps onto wire sentinels.

// SessionStore persists login sessions.
type SessionStore interface {
	Create(ctx context.Context, token string) (*model.Session, error)
	FindByToken(ctx context.Context, token string) (*model.Session, error)
	Renew(ctx context.Context, oldToken, newToken string) (*model.Session, error)
}

// FlightStore reads and mutates flights by lifecycle state.
type FlightStore interface {
	GetByID(ctx context.Context, id int64) (*model.Flight, error)
	ListOpen(ctx context.Context) ([]model.BidFlight, error)
	UpdateRoute(ctx context.Context, id int64, route string) error
	FileReport(ctx context.Context, id int64, log string, comments *string, landingRate, durationMinutes int) error
	CompletedStats(ctx context.Context) (model.FlightStats, error)
}

// PositionStore appends telemetry samples.
type PositionStore interface {
	Append(ctx context.Context, p *model.Position) error
}

// AirportCatalog lists the read-only airport reference data.
type AirportCatalog interface {
	ListAll(ctx context.Context) ([]model.Airport, error)
}

// AircraftCatalog lists the read-only fleet reference data.
type AircraftCatalog interface {
	ListAll(ctx context.Context) ([]model.Aircraft, error)
}

// PayloadCache caches encoded catalog payloads. Implementations must treat
// a miss and an unavailable backend the same way.
type PayloadCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, payload string)
}

// EventPublisher pushes domain events for the website/live-map consumers.
// Publishing is best effort: the dispatcher logs and ignores failures.
type EventPublisher interface {
	PublishPositionReported(ctx context.Context, ev queue.PositionReportedEvent) error
	PublishPirepFiled(ctx context.Context, ev queue.PirepFiledEvent) error
}
