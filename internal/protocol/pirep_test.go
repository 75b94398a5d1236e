package protocol

import "testing"

func TestFixupLog(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "markers mid-text get a newline",
			in:   "hello[12:00:00]world[13:00:00]",
			want: "hello\n[12:00:00]world\n[13:00:00]",
		},
		{
			name: "leading marker untouched",
			in:   "[08:15:00]pushback",
			want: "[08:15:00]pushback",
		},
		{
			name: "adjacent markers split",
			in:   "[08:15:00][08:16:00]",
			want: "[08:15:00]\n[08:16:00]",
		},
		{
			name: "no markers",
			in:   "plain text",
			want: "plain text",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "bracketed non-time left alone",
			in:   "x[note]y",
			want: "x[note]y",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FixupLog(c.in); got != c.want {
				t.Errorf("FixupLog(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestParseFlightTime(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1.30", 90},
		{"0.05", 5},
		{"00.00", 0},
		{"", 0},      // absent defaults to 00.00
		{"23.59", 1439},
		{"2", 0},     // no separator
		{"1.75", 0},  // not a clock time
		{"25.00", 0}, // hour out of range
		{"-1.30", 0},
		{"x.yz", 0},
	}
	for _, c := range cases {
		if got := ParseFlightTime(c.in); got != c.want {
			t.Errorf("ParseFlightTime(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{-450, 2, -225},
		{-451, 2, -226}, // rounds toward negative infinity
		{451, 2, 225},
		{0, 3, 0},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
