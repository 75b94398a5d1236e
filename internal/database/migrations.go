package database

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are executed in order at startup. Statements are idempotent so
// a restart against an existing database is a no-op. The admin back-office
// and the public website read and write these same tables.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id        BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		sessionid VARCHAR(64) NOT NULL,
		timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_sessions_sessionid (sessionid)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS airports (
		id        BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		icao      VARCHAR(4) NOT NULL,
		name      VARCHAR(200) NOT NULL,
		latitude  DOUBLE NOT NULL,
		longitude DOUBLE NOT NULL,
		country   VARCHAR(10) NOT NULL,
		UNIQUE KEY uq_airports_icao (icao)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS aircraft (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		icao           VARCHAR(4) NOT NULL,
		name           VARCHAR(200) NOT NULL,
		registration   VARCHAR(10) NOT NULL,
		max_passengers INT NOT NULL,
		max_cargo      INT NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS flights (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		airline_icao   VARCHAR(4) NOT NULL,
		flight_number  INT NOT NULL,
		origin_id      BIGINT UNSIGNED NOT NULL,
		destination_id BIGINT UNSIGNED NOT NULL,
		route          TEXT NOT NULL,
		flight_level   INT NOT NULL,
		aircraft_id    BIGINT UNSIGNED NOT NULL,
		duration       INT NULL,
		landing_rate   INT NULL,
		log            TEXT NULL,
		comments       TEXT NULL,
		CONSTRAINT fk_flights_origin      FOREIGN KEY (origin_id) REFERENCES airports (id),
		CONSTRAINT fk_flights_destination FOREIGN KEY (destination_id) REFERENCES airports (id),
		CONSTRAINT fk_flights_aircraft    FOREIGN KEY (aircraft_id) REFERENCES aircraft (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS positions (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		flight_id    BIGINT UNSIGNED NOT NULL,
		latitude     DOUBLE NOT NULL,
		longitude    DOUBLE NOT NULL,
		altitude     INT NOT NULL,
		heading      INT NOT NULL,
		ground_speed INT NOT NULL,
		phase        INT NULL,
		timestamp    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_positions_flight (flight_id),
		CONSTRAINT fk_positions_flight FOREIGN KEY (flight_id) REFERENCES flights (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
