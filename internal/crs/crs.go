// Package crs models coordinate reference systems and coordinate
// transforms between them. Frames are resolved from EPSG codes (or raw
// proj.4 definitions) and compared by their canonical form, so
// "EPSG:4326", "epsg:4326" and 4326 all name the same frame.
package crs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/ctessum/geom/proj"
)

// ErrUnknownCRS is returned when an identifier cannot be resolved to a
// known coordinate reference system.
var ErrUnknownCRS = errors.New("crs: unknown coordinate reference system")

// EPSG code ranges for the WGS84 UTM zones.
const (
	epsgUTMNorthBase = 32600
	epsgUTMSouthBase = 32700
	utmZoneCount     = 60
)

// Frame is an immutable coordinate reference system. The zero value is
// not usable; construct frames with FromEPSG or Parse.
type Frame struct {
	code int    // EPSG code, 0 when built from a raw proj.4 definition
	def  string // proj.4 definition
	sr   *proj.SR
}

var (
	wgs84Once sync.Once
	wgs84     *Frame
)

// WGS84 returns the EPSG:4326 geographic frame.
func WGS84() *Frame {
	wgs84Once.Do(func() {
		f, err := FromEPSG(4326)
		if err != nil {
			panic(err)
		}
		wgs84 = f
	})
	return wgs84
}

// FromEPSG resolves an EPSG code to a Frame. Supported codes are the
// geographic systems 4326 and 4269, web mercator 3857, and the WGS84
// UTM zones 32601-32660 (north) and 32701-32760 (south).
func FromEPSG(code int) (*Frame, error) {
	def, ok := proj4ForEPSG(code)
	if !ok {
		return nil, fmt.Errorf("%w: EPSG:%d", ErrUnknownCRS, code)
	}
	sr, err := proj.Parse(def)
	if err != nil {
		return nil, fmt.Errorf("%w: EPSG:%d: %v", ErrUnknownCRS, code, err)
	}
	return &Frame{code: code, def: def, sr: sr}, nil
}

// Parse resolves a CRS identifier to a Frame. Accepted spellings are
// "EPSG:<code>", a bare numeric code, or a raw proj.4 definition
// starting with "+".
func Parse(ident string) (*Frame, error) {
	s := strings.TrimSpace(ident)
	if s == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrUnknownCRS)
	}

	if strings.HasPrefix(s, "+") {
		sr, err := proj.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownCRS, ident, err)
		}
		return &Frame{def: s, sr: sr}, nil
	}

	if rest, ok := strings.CutPrefix(strings.ToUpper(s), "EPSG:"); ok {
		s = rest
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCRS, ident)
	}
	return FromEPSG(code)
}

// UTMZone returns the frame of a WGS84 UTM zone by zone number and
// hemisphere.
func UTMZone(zone int, south bool) (*Frame, error) {
	if zone < 1 || zone > utmZoneCount {
		return nil, fmt.Errorf("%w: UTM zone %d", ErrUnknownCRS, zone)
	}
	if south {
		return FromEPSG(epsgUTMSouthBase + zone)
	}
	return FromEPSG(epsgUTMNorthBase + zone)
}

// EPSG returns the frame's EPSG code, or 0 for frames built from a raw
// proj.4 definition without a known code.
func (f *Frame) EPSG() int { return f.code }

// Proj4 returns the frame's proj.4 definition.
func (f *Frame) Proj4() string { return f.def }

// IsGeographic reports whether the frame's coordinates are degrees of
// longitude and latitude.
func (f *Frame) IsGeographic() bool {
	return strings.Contains(f.def, "+proj=longlat")
}

// Equal reports whether two frames name the same coordinate reference
// system. Frames with EPSG codes compare by code; code-less frames
// compare by normalized definition.
func (f *Frame) Equal(o *Frame) bool {
	if f == nil || o == nil {
		return f == o
	}
	if f.code != 0 || o.code != 0 {
		return f.code == o.code
	}
	return normalizeDef(f.def) == normalizeDef(o.def)
}

func (f *Frame) String() string {
	if f.code != 0 {
		return fmt.Sprintf("EPSG:%d", f.code)
	}
	return f.def
}

func normalizeDef(def string) string {
	fields := strings.Fields(def)
	return strings.Join(fields, " ")
}

// proj4ForEPSG maps the EPSG codes this system works with to proj.4
// definitions. The projection library resolves definitions, not codes,
// so the mapping lives here.
func proj4ForEPSG(code int) (string, bool) {
	switch {
	case code == 4326:
		return "+proj=longlat +datum=WGS84 +no_defs", true
	case code == 4269:
		return "+proj=longlat +datum=NAD83 +no_defs", true
	case code == 3857:
		return "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +nadgrids=@null +no_defs", true
	case code > epsgUTMNorthBase && code <= epsgUTMNorthBase+utmZoneCount:
		return fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", code-epsgUTMNorthBase), true
	case code > epsgUTMSouthBase && code <= epsgUTMSouthBase+utmZoneCount:
		return fmt.Sprintf("+proj=utm +zone=%d +south +datum=WGS84 +units=m +no_defs", code-epsgUTMSouthBase), true
	}
	return "", false
}
