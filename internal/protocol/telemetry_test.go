package protocol

import "testing"

func TestSnapCoordinate(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.0049, 0},
		{-0.0049, 0},
		{0.00001, 0},
		{0, 0},
		{0.005, 0.005},   // boundary is exclusive
		{-0.005, -0.005}, // both sides
		{51.4775, 51.4775},
		{-0.4614, -0.4614},
	}
	for _, c := range cases {
		if got := SnapCoordinate(c.in); got != c.want {
			t.Errorf("SnapCoordinate(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"51.4775", 51.4775},
		{"51,4775", 51.4775}, // comma decimal separator
		{"-0,4614", -0.4614},
		{"0.004", 0}, // snapped
		{"", 0},
		{"bogus", 0},
	}
	for _, c := range cases {
		if got := ParseCoordinate(c.in); got != c.want {
			t.Errorf("ParseCoordinate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseIntField(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"35000", 35000},
		{"-312", -312},
		{"", 0},
		{"12.5", 0},
		{"abc", 0},
	}
	for _, c := range cases {
		if got := parseIntField(c.in); got != c.want {
			t.Errorf("parseIntField(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
