package repository // repository defines data access for track positions

import (
	"context"
	"database/sql"

	"github.com/myacars/myacars/internal/model"
)

// PositionRepo provides methods to work with track positions. Positions
// are append-only; nothing ever updates or deletes one here (track rows
// disappear only when an admin deletes the owning flight).
type PositionRepo struct {
	db *sql.DB
}

// NewPositionRepo constructs a PositionRepo with the given DB handle.
func NewPositionRepo(db *sql.DB) *PositionRepo {
	return &PositionRepo{db: db}
}

// Append inserts a new track sample for a flight. On success the position's
// ID is populated; the timestamp is assigned by the database.
func (r *PositionRepo) Append(ctx context.Context, p *model.Position) error {
	const q = `INSERT INTO positions (flight_id, latitude, longitude, altitude, heading, ground_speed, phase)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		p.FlightID, p.Latitude, p.Longitude, p.Altitude, p.Heading, p.GroundSpeed, p.Phase)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// ListByFlight retrieves a flight's track ordered by timestamp, then id for
// samples sharing a second.
func (r *PositionRepo) ListByFlight(ctx context.Context, flightID int64) ([]model.Position, error) {
	const q = `SELECT id, flight_id, latitude, longitude, altitude, heading, ground_speed, phase, timestamp
	           FROM positions
	           WHERE flight_id = ?
	           ORDER BY timestamp, id`
	rows, err := r.db.QueryContext(ctx, q, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Position
	for rows.Next() {
		var p model.Position
		if err := rows.Scan(
			&p.ID, &p.FlightID, &p.Latitude, &p.Longitude,
			&p.Altitude, &p.Heading, &p.GroundSpeed, &p.Phase, &p.Timestamp,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
