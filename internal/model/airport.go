package model

// Airport is a row of the read-only airport catalog. Rows are maintained by
// an external import process; the gateway only lists them. Unique by ICAO.
type Airport struct {
	ID        int64   // airports.id
	ICAO      string  // airports.icao (4-char code)
	Name      string  // airports.name
	Latitude  float64 // airports.latitude
	Longitude float64 // airports.longitude
	Country   string  // airports.country (ISO code)
}
