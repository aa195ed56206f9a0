package tiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"geotiler/internal/crs"
)

// Tile is an immutable grid cell: a UTM zone, an integer-aligned origin
// at the cell's lower-left corner, and integer width and height in UTM
// meters. The UTM rectangle, its WGS84 footprint and the canonical
// identifier are all derived once at construction. Two tiles with equal
// identifiers have equal geometry.
type Tile struct {
	zone          *crs.Frame
	x, y          int
	width, height int

	utmGeometry orb.Polygon
	wgsGeometry orb.Polygon
	id          string
}

// NewTile builds a tile in the given UTM zone. The origin and size are
// coerced to integers by truncation toward zero; sizes must be positive
// after coercion. The zone must carry an EPSG code, since the code is
// part of the tile's identity.
func NewTile(zone *crs.Frame, x, y, width, height float64) (*Tile, error) {
	if zone == nil {
		return nil, fmt.Errorf("%w: nil zone frame", ErrInvalidArgument)
	}
	if zone.EPSG() == 0 {
		return nil, fmt.Errorf("%w: zone frame %v has no EPSG code", ErrInvalidArgument, zone)
	}

	t := &Tile{
		zone:   zone,
		x:      int(x),
		y:      int(y),
		width:  int(width),
		height: int(height),
	}
	if t.width <= 0 || t.height <= 0 {
		return nil, fmt.Errorf("%w: tile size must be positive, got %dx%d", ErrInvalidArgument, t.width, t.height)
	}

	t.utmGeometry = rectangle(float64(t.x), float64(t.y), float64(t.x+t.width), float64(t.y+t.height))

	wgs, err := zone.TransformTo(crs.WGS84(), t.utmGeometry)
	if err != nil {
		return nil, err
	}
	t.wgsGeometry = wgs.(orb.Polygon)

	t.id = fmt.Sprintf("%d_%d_%d_%d_%d", zone.EPSG(), t.x, t.y, t.width, t.height)
	return t, nil
}

// TileFromID reconstructs a tile from its canonical identifier. Fields
// holding whole-number floats (e.g. "6000000.0") are accepted; anything
// that does not split into exactly five numeric fields, or whose first
// field is not a resolvable EPSG code, is rejected.
func TileFromID(id string) (*Tile, error) {
	parts := strings.Split(id, "_")
	if len(parts) != 5 {
		return nil, fmt.Errorf("%w: %q: want 5 fields, got %d", ErrTileID, id, len(parts))
	}

	var vals [5]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: field %d is not numeric", ErrTileID, id, i+1)
		}
		vals[i] = v
	}

	zone, err := crs.FromEPSG(int(vals[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrTileID, id, err)
	}
	t, err := NewTile(zone, vals[1], vals[2], vals[3], vals[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrTileID, id, err)
	}
	return t, nil
}

// ID returns the canonical identifier "{epsg}_{x}_{y}_{width}_{height}".
func (t *Tile) ID() string { return t.id }

// Zone returns the UTM zone frame the tile lives in.
func (t *Tile) Zone() *crs.Frame { return t.zone }

// Origin returns the tile's lower-left corner in UTM coordinates.
func (t *Tile) Origin() (x, y int) { return t.x, t.y }

// Size returns the tile's width and height in UTM meters.
func (t *Tile) Size() (width, height int) { return t.width, t.height }

// UTMGeometry returns the tile's axis-aligned rectangle in its zone.
func (t *Tile) UTMGeometry() orb.Polygon { return t.utmGeometry }

// WGSGeometry returns the tile's WGS84 footprint: the UTM rectangle
// reprojected corner-by-corner, a closed 5-vertex ring.
func (t *Tile) WGSGeometry() orb.Polygon { return t.wgsGeometry }

// Bound returns the tile's UTM bounding box.
func (t *Tile) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(t.x), float64(t.y)},
		Max: orb.Point{float64(t.x + t.width), float64(t.y + t.height)},
	}
}

// Equal reports structural equality: same zone, origin and size. For
// valid tiles this agrees with identifier equality.
func (t *Tile) Equal(o *Tile) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.zone.Equal(o.zone) && t.x == o.x && t.y == o.y &&
		t.width == o.width && t.height == o.height
}

func (t *Tile) String() string { return t.id }

// rectangle builds a closed counter-clockwise ring over the box
// [minx, maxx] x [miny, maxy].
func rectangle(minx, miny, maxx, maxy float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{minx, miny},
		{maxx, miny},
		{maxx, maxy},
		{minx, maxy},
		{minx, miny},
	}}
}
