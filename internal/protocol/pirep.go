package protocol

import (
	"regexp"
	"strconv"
	"strings"
)

// logMarker matches any character immediately followed by an embedded
// [HH:MM:SS] timestamp marker. The client concatenates log lines without
// line breaks; FixupLog restores them.
var logMarker = regexp.MustCompile(`(.)(\[[0-9]{2}:[0-9]{2}:[0-9]{2}\])`)

// FixupLog inserts a newline before every timestamp marker that does not
// already start the text. A marker at position 0 has no preceding
// character and is left alone.
func FixupLog(raw string) string {
	return logMarker.ReplaceAllString(raw, "${1}\n${2}")
}

// ParseFlightTime converts the client's "H.MM" clock notation ("1.30" is
// one hour thirty minutes) into total minutes. The empty string means the
// field was absent and defaults to "00.00". Values that do not parse as a
// clock time yield 0, per the documented ParseError policy.
func ParseFlightTime(raw string) int {
	if raw == "" {
		raw = "00.00"
	}
	h, m, ok := strings.Cut(raw, ".")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0
	}
	return minutes + 60*hours
}
