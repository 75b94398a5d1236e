// Package queue defines message payloads exchanged over the message broker.
package queue

// PositionReportedEvent is published for every accepted position report.
// It carries the full sample so the live-map consumer never has to query
// the primary database.
type PositionReportedEvent struct {
	FlightID    int64   `json:"flight_id"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Altitude    int     `json:"altitude"`
	Heading     int     `json:"heading"`
	GroundSpeed int     `json:"ground_speed"`
	Phase       *int    `json:"phase,omitempty"`
	ReportedAt  string  `json:"reported_at"`
}

// PirepFiledEvent is published when a flight is completed by a filed PIREP.
type PirepFiledEvent struct {
	FlightID        int64  `json:"flight_id"`
	LandingRate     int    `json:"landing_rate"`
	DurationMinutes int    `json:"duration_minutes"`
	FiledAt         string `json:"filed_at"`
}
