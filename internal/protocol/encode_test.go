package protocol

import "testing"

func TestEncodeStripsSeparator(t *testing.T) {
	cases := []struct {
		sep  string
		in   any
		want string
	}{
		{",", "a,b,c", "abc"},
		{"|", "EDDF|test", "EDDFtest"},
		{";", "rec;ord", "record"},
		{",", "no separator here", "no separator here"},
	}
	for _, c := range cases {
		got := Encode(c.sep, c.in)
		if got != c.want {
			t.Errorf("Encode(%q, %q) = %q, want %q", c.sep, c.in, got, c.want)
		}
	}
}

func TestEncodeJoins(t *testing.T) {
	got := Encode(",", "1", "AAA", 42, "")
	if got != "1,AAA,42," {
		t.Errorf("got %q", got)
	}
}

func TestEncodeNilRendersEmpty(t *testing.T) {
	var ip *int
	var sp *string
	got := Encode(",", nil, ip, sp, "x")
	if got != ",,,x" {
		t.Errorf("nil values must render empty, got %q", got)
	}
}

func TestEncodeFloatsPlainDecimal(t *testing.T) {
	got := Encode("|", 50.0379, -8.5622, 0.005)
	if got != "50.0379|-8.5622|0.005" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeTwoLevels(t *testing.T) {
	rec1 := Encode("|", 1, "EDDF", "Frankfurt")
	rec2 := Encode("|", 2, "EGLL", "Heathrow")
	got := Encode(";", rec1, rec2)
	if got != "1|EDDF|Frankfurt;2|EGLL|Heathrow" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeRecordSeparatorStrippedFromValues(t *testing.T) {
	// A value containing the record separator loses it at the record level.
	rec := Encode("|", 1, "semi;colon")
	got := Encode(";", rec)
	if got != "1|semicolon" {
		t.Errorf("got %q", got)
	}
}
