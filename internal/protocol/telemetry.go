package protocol

import (
	"strconv"
	"strings"
)

// coordEpsilon bounds the noise band some clients emit around the origin
// instead of a true zero. The boundary is exclusive: exactly 0.005 is a
// real coordinate.
const coordEpsilon = 0.005

// SnapCoordinate replaces near-zero coordinate noise with exactly 0.
// Workaround for a known client bug; do not "fix".
func SnapCoordinate(v float64) float64 {
	if v < coordEpsilon && v > -coordEpsilon {
		return 0
	}
	return v
}

// ParseCoordinate parses a decimal-degree string that may use "," as the
// decimal separator, then applies the near-zero snap. Malformed input
// parses as 0 (documented ParseError policy: a zeroed sample beats a
// dropped report mid-flight).
func ParseCoordinate(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0
	}
	return SnapCoordinate(v)
}

// parseIntField parses an integer field, defaulting to 0 when absent or
// malformed.
func parseIntField(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
