// Package repository defines data access for the five protocol entities.
// Sentinel errors are declared next to the repository that raises them so
// the dispatcher can translate each into the matching wire sentinel
// (a missing session becomes AUTH_FAILED, a missing flight becomes ERROR).
package repository

import "errors"

// ErrSessionNotFound is returned when no session row matches a token.
var ErrSessionNotFound = errors.New("session not found")

// ErrFlightNotFound is returned when a flight lookup yields no rows.
var ErrFlightNotFound = errors.New("flight not found")

// ErrAirportNotFound is returned when an airport lookup yields no rows.
var ErrAirportNotFound = errors.New("airport not found")
