package model

import "time"

// Position is one telemetry sample appended to a flight's track. Rows are
// append-only and ordered by timestamp; the gateway never updates one.
//
// Fields:
//  ID          – primary key identifier.
//  FlightID    – FK -> flights.id (track rows go with their flight).
//  Latitude    – decimal degrees, snapped to 0 when within the noise band.
//  Longitude   – decimal degrees, snapped like latitude.
//  Altitude    – feet.
//  Heading     – magnetic heading in degrees.
//  GroundSpeed – knots.
//  Phase       – client flight phase code; nil when the client omitted it.
//  Timestamp   – when the sample was recorded (UTC).
type Position struct {
	ID          int64     // positions.id
	FlightID    int64     // positions.flight_id
	Latitude    float64   // positions.latitude
	Longitude   float64   // positions.longitude
	Altitude    int       // positions.altitude
	Heading     int       // positions.heading
	GroundSpeed int       // positions.ground_speed
	Phase       *int      // positions.phase (nullable)
	Timestamp   time.Time // positions.timestamp
}
