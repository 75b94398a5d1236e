package repository // repository defines data access for flights

import (
	"context"
	"database/sql"
	"errors"

	"github.com/myacars/myacars/internal/model"
)

// flightColumns is the scan list shared by the flight queries.
const flightColumns = `id, airline_icao, flight_number, origin_id, destination_id,
	route, flight_level, aircraft_id, duration, landing_rate, log, comments`

// FlightRepo provides methods to work with flights in the database. A
// flight is Open until a PIREP is filed for it; FileReport is the only
// path that completes one.
type FlightRepo struct {
	db *sql.DB
}

// NewFlightRepo constructs a FlightRepo with the given DB handle.
func NewFlightRepo(db *sql.DB) *FlightRepo {
	return &FlightRepo{db: db}
}

// Create inserts a flight record. Flights are normally created by the admin
// back-office; the protocol itself never creates one.
func (r *FlightRepo) Create(ctx context.Context, f *model.Flight) error {
	const q = `INSERT INTO flights
	           (airline_icao, flight_number, origin_id, destination_id, route, flight_level, aircraft_id)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		f.AirlineICAO, f.FlightNumber, f.OriginID, f.DestinationID, f.Route, f.FlightLevel, f.AircraftID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = id
	return nil
}

// GetByID retrieves a flight by its id.
func (r *FlightRepo) GetByID(ctx context.Context, id int64) (*model.Flight, error) {
	q := `SELECT ` + flightColumns + ` FROM flights WHERE id = ?`
	var f model.Flight
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&f.ID, &f.AirlineICAO, &f.FlightNumber, &f.OriginID, &f.DestinationID,
		&f.Route, &f.FlightLevel, &f.AircraftID, &f.Duration, &f.LandingRate, &f.Log, &f.Comments,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListOpen retrieves flights that have no filed PIREP yet, joined with the
// ICAO codes of their endpoints for the bid listing. Ordered by id so the
// listing is stable between calls.
func (r *FlightRepo) ListOpen(ctx context.Context) ([]model.BidFlight, error) {
	const q = `SELECT f.id, f.airline_icao, f.flight_number, f.origin_id, f.destination_id,
	                  f.route, f.flight_level, f.aircraft_id, f.duration, f.landing_rate, f.log, f.comments,
	                  o.icao, d.icao
	           FROM flights f
	           JOIN airports o ON o.id = f.origin_id
	           JOIN airports d ON d.id = f.destination_id
	           WHERE f.landing_rate IS NULL AND f.log IS NULL
	           ORDER BY f.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.BidFlight
	for rows.Next() {
		var f model.BidFlight
		if err := rows.Scan(
			&f.ID, &f.AirlineICAO, &f.FlightNumber, &f.OriginID, &f.DestinationID,
			&f.Route, &f.FlightLevel, &f.AircraftID, &f.Duration, &f.LandingRate, &f.Log, &f.Comments,
			&f.OriginICAO, &f.DestinationICAO,
		); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListCompleted retrieves flights with a filed PIREP, newest first. Used by
// the public flight-history website rather than the protocol.
func (r *FlightRepo) ListCompleted(ctx context.Context) ([]model.Flight, error) {
	q := `SELECT ` + flightColumns + ` FROM flights
	      WHERE landing_rate IS NOT NULL AND log IS NOT NULL
	      ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Flight
	for rows.Next() {
		var f model.Flight
		if err := rows.Scan(
			&f.ID, &f.AirlineICAO, &f.FlightNumber, &f.OriginID, &f.DestinationID,
			&f.Route, &f.FlightLevel, &f.AircraftID, &f.Duration, &f.LandingRate, &f.Log, &f.Comments,
		); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateRoute overwrites the flight's route. Callers only invoke this when
// the submitted route is present and differs from the stored one, so an
// empty client submission never clears a route.
func (r *FlightRepo) UpdateRoute(ctx context.Context, id int64, route string) error {
	const q = `UPDATE flights SET route = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, route, id)
	return err
}

// FileReport sets the four completion fields in one statement. This is the
// sole Open -> Completed transition; nothing in the gateway clears these
// fields again.
func (r *FlightRepo) FileReport(ctx context.Context, id int64, log string, comments *string, landingRate, durationMinutes int) error {
	const q = `UPDATE flights
	           SET log = ?, comments = ?, landing_rate = ?, duration = ?
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, log, comments, landingRate, durationMinutes, id)
	return err
}

// CompletedStats aggregates the completed flights for the pilot center
// screen: total minutes flown, flight count and landing rate sum.
func (r *FlightRepo) CompletedStats(ctx context.Context) (model.FlightStats, error) {
	const q = `SELECT COALESCE(SUM(duration), 0), COUNT(*), COALESCE(SUM(landing_rate), 0)
	           FROM flights
	           WHERE landing_rate IS NOT NULL AND log IS NOT NULL`
	var s model.FlightStats
	err := r.db.QueryRowContext(ctx, q).Scan(&s.TotalMinutes, &s.Flights, &s.LandingRateSum)
	if err != nil {
		return model.FlightStats{}, err
	}
	return s, nil
}
