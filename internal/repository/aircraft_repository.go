package repository // repository defines data access for the fleet catalog

import (
	"context"
	"database/sql"

	"github.com/myacars/myacars/internal/model"
)

// AircraftRepo provides methods to work with aircraft in the database.
// Like airports, aircraft are reference data maintained outside the
// protocol surface.
type AircraftRepo struct {
	db *sql.DB
}

// NewAircraftRepo constructs an AircraftRepo with the given DB handle.
func NewAircraftRepo(db *sql.DB) *AircraftRepo {
	return &AircraftRepo{db: db}
}

// Create inserts a single aircraft record. On success the aircraft's ID is
// populated.
func (r *AircraftRepo) Create(ctx context.Context, a *model.Aircraft) error {
	const q = `INSERT INTO aircraft (icao, name, registration, max_passengers, max_cargo)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.ICAO, a.Name, a.Registration, a.MaxPassengers, a.MaxCargo)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

// ListAll retrieves the whole fleet ordered by id.
func (r *AircraftRepo) ListAll(ctx context.Context) ([]model.Aircraft, error) {
	const q = `SELECT id, icao, name, registration, max_passengers, max_cargo
	           FROM aircraft ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Aircraft
	for rows.Next() {
		var a model.Aircraft
		if err := rows.Scan(&a.ID, &a.ICAO, &a.Name, &a.Registration, &a.MaxPassengers, &a.MaxCargo); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
