package repository // repository defines data access for the airport catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/myacars/myacars/internal/model"
)

// AirportRepo provides methods to work with airports in the database. The
// protocol only lists airports; Create and GetByICAO exist for the external
// catalog import process.
type AirportRepo struct {
	db *sql.DB
}

// NewAirportRepo constructs an AirportRepo with the given DB handle.
func NewAirportRepo(db *sql.DB) *AirportRepo {
	return &AirportRepo{db: db}
}

// Create inserts a single airport record. On success the airport's ID is
// populated.
func (r *AirportRepo) Create(ctx context.Context, a *model.Airport) error {
	const q = `INSERT INTO airports (icao, name, latitude, longitude, country)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.ICAO, a.Name, a.Latitude, a.Longitude, a.Country)
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

// GetByICAO retrieves an airport by its ICAO code.
func (r *AirportRepo) GetByICAO(ctx context.Context, icao string) (*model.Airport, error) {
	const q = `SELECT id, icao, name, latitude, longitude, country
	           FROM airports WHERE icao = ?`
	var a model.Airport
	err := r.db.QueryRowContext(ctx, q, icao).
		Scan(&a.ID, &a.ICAO, &a.Name, &a.Latitude, &a.Longitude, &a.Country)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAirportNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListAll retrieves the whole airport catalog ordered by id.
func (r *AirportRepo) ListAll(ctx context.Context) ([]model.Airport, error) {
	const q = `SELECT id, icao, name, latitude, longitude, country
	           FROM airports ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Airport
	for rows.Next() {
		var a model.Airport
		if err := rows.Scan(&a.ID, &a.ICAO, &a.Name, &a.Latitude, &a.Longitude, &a.Country); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
