package model

// Flight is a scheduled leg in the `flights` table. Its lifecycle is
// monotonic: Open (no log, no landing rate) -> Active (route updates and
// position reports arrive) -> Completed (log, duration and landing rate set
// by the filed PIREP). Only Open flights are offered as bids; nothing in the
// gateway ever moves a flight back to an earlier state.
//
// Fields:
//  ID            – primary key identifier.
//  AirlineICAO   – operating airline code.
//  FlightNumber  – numeric flight number.
//  OriginID      – FK -> airports.id.
//  DestinationID – FK -> airports.id.
//  Route         – filed route string; frozen once the PIREP is filed.
//  FlightLevel   – cruise level in hundreds of feet (e.g. 350).
//  AircraftID    – FK -> aircraft.id.
//  Duration      – flight time in minutes (nil until completed).
//  LandingRate   – touchdown rate in feet per minute (nil until completed).
//  Log           – client flight log text (nil until completed).
//  Comments      – pilot comments from the PIREP (nil when none were sent).
type Flight struct {
	ID            int64   // flights.id
	AirlineICAO   string  // flights.airline_icao
	FlightNumber  int     // flights.flight_number
	OriginID      int64   // flights.origin_id
	DestinationID int64   // flights.destination_id
	Route         string  // flights.route
	FlightLevel   int     // flights.flight_level
	AircraftID    int64   // flights.aircraft_id
	Duration      *int    // flights.duration (minutes, nullable)
	LandingRate   *int    // flights.landing_rate (nullable)
	Log           *string // flights.log (nullable)
	Comments      *string // flights.comments (nullable)
}

// Completed reports whether the flight has a filed PIREP.
func (f *Flight) Completed() bool {
	return f.Log != nil && f.LandingRate != nil
}

// BidFlight is a Flight joined with the ICAO codes of its endpoints, as
// needed by the bid listing (the wire record carries codes, not ids).
type BidFlight struct {
	Flight
	OriginICAO      string
	DestinationICAO string
}

// FlightStats aggregates the completed flights for the pilot center screen.
type FlightStats struct {
	TotalMinutes   int // sum of durations
	Flights        int // number of completed flights
	LandingRateSum int // sum of landing rates
}
