// Package protocol implements the smartCARS delimited-text protocol: the
// action dispatch table, the wire encoding and the field normalization
// rules the client depends on. The wire format is fixed by the deployed
// client population, quirks included.
package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode renders each value as text, strips every occurrence of the
// separator from it and joins the results. The protocol strips rather than
// escapes: a value containing the separator simply loses it. Nil values
// (including nil typed pointers) render as the empty string, never as a
// "null" token. Used at two levels at once: fields joined by "," or "|",
// records joined by ";".
func Encode(sep string, values ...any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strings.ReplaceAll(stringify(v), sep, "")
	}
	return strings.Join(parts, sep)
}

// stringify converts a scalar to its wire text form. Floats are rendered
// in plain decimal notation; the client cannot parse exponents.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case *int:
		if t == nil {
			return ""
		}
		return strconv.Itoa(*t)
	case *string:
		if t == nil {
			return ""
		}
		return *t
	default:
		return fmt.Sprint(t)
	}
}
