package model

// Aircraft is a row of the read-only fleet catalog, maintained externally
// like the airport list.
type Aircraft struct {
	ID            int64  // aircraft.id
	ICAO          string // aircraft.icao (type designator)
	Name          string // aircraft.name
	Registration  string // aircraft.registration
	MaxPassengers int    // aircraft.max_passengers
	MaxCargo      int    // aircraft.max_cargo
}
