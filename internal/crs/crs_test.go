package crs

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		ident string
		epsg  int
	}{
		{"epsg prefix", "EPSG:4326", 4326},
		{"lowercase prefix", "epsg:4326", 4326},
		{"bare code", "4326", 4326},
		{"utm north", "EPSG:32633", 32633},
		{"utm south", "EPSG:32756", 32756},
		{"web mercator", "3857", 3857},
		{"padded", "  EPSG:32613 ", 32613},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := Parse(tt.ident)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.ident, err)
			}
			if frame.EPSG() != tt.epsg {
				t.Errorf("Parse(%q).EPSG() = %d, want %d", tt.ident, frame.EPSG(), tt.epsg)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"EPSG:",
		"EPSG:abc",
		"not-a-crs",
		"EPSG:99999",
		"32600", // zone 0 does not exist
		"32661", // zone 61 does not exist
	}

	for _, ident := range tests {
		if _, err := Parse(ident); !errors.Is(err, ErrUnknownCRS) {
			t.Errorf("Parse(%q): want ErrUnknownCRS, got %v", ident, err)
		}
	}
}

func TestParseProj4(t *testing.T) {
	frame, err := Parse("+proj=longlat +datum=WGS84 +no_defs")
	if err != nil {
		t.Fatalf("Parse proj4: %v", err)
	}
	if frame.EPSG() != 0 {
		t.Errorf("raw proj4 frame EPSG = %d, want 0", frame.EPSG())
	}
	if !frame.IsGeographic() {
		t.Error("longlat frame should be geographic")
	}
}

func TestFrameEqual(t *testing.T) {
	a, err := Parse("EPSG:32633")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("32633")
	if err != nil {
		t.Fatal(err)
	}
	c, err := Parse("EPSG:32634")
	if err != nil {
		t.Fatal(err)
	}

	if !a.Equal(b) {
		t.Error("EPSG:32633 and 32633 should compare equal")
	}
	if a.Equal(c) {
		t.Error("EPSG:32633 and EPSG:32634 should differ")
	}

	// Raw definitions compare by normalized text.
	d1, err := Parse("+proj=longlat  +datum=WGS84   +no_defs")
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Parse("+proj=longlat +datum=WGS84 +no_defs")
	if err != nil {
		t.Fatal(err)
	}
	if !d1.Equal(d2) {
		t.Error("equivalent proj4 definitions should compare equal")
	}
}

func TestUTMZone(t *testing.T) {
	tests := []struct {
		zone  int
		south bool
		epsg  int
	}{
		{31, false, 32631},
		{13, false, 32613},
		{33, true, 32733},
		{60, true, 32760},
	}
	for _, tt := range tests {
		frame, err := UTMZone(tt.zone, tt.south)
		if err != nil {
			t.Fatalf("UTMZone(%d, %v): %v", tt.zone, tt.south, err)
		}
		if frame.EPSG() != tt.epsg {
			t.Errorf("UTMZone(%d, %v) = %d, want %d", tt.zone, tt.south, frame.EPSG(), tt.epsg)
		}
	}

	for _, zone := range []int{0, 61, -1} {
		if _, err := UTMZone(zone, false); !errors.Is(err, ErrUnknownCRS) {
			t.Errorf("UTMZone(%d): want ErrUnknownCRS, got %v", zone, err)
		}
	}
}

func TestWGS84(t *testing.T) {
	if WGS84().EPSG() != 4326 {
		t.Fatalf("WGS84().EPSG() = %d", WGS84().EPSG())
	}
	if WGS84() != WGS84() {
		t.Error("WGS84 should return the cached frame")
	}
}
