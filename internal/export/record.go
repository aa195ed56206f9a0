// Package export serializes finished tile lists. Tiles become
// {tile_id, geometry} records carrying WGS84 footprints, always tagged
// EPSG:4326 regardless of the input frame, and records are written out
// as GeoJSON, ESRI Shapefile or GeoParquet.
package export

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"geotiler/internal/tiler"
)

// CRSTag is the frame every exported record collection is expressed in.
const CRSTag = "EPSG:4326"

// ErrUnknownFormat is returned for output formats Write does not know.
var ErrUnknownFormat = errors.New("export: unknown output format")

// Format selects an output file format.
type Format string

const (
	FormatGeoJSON    Format = "geojson"
	FormatShapefile  Format = "shp"
	FormatGeoParquet Format = "geoparquet"
)

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatGeoJSON, FormatShapefile, FormatGeoParquet:
		return Format(name), nil
	}
	return "", fmt.Errorf("%w: %q (want geojson, shp or geoparquet)", ErrUnknownFormat, name)
}

// Record is one exported tile: its canonical identifier and its WGS84
// footprint.
type Record struct {
	TileID   string
	Geometry orb.Polygon
}

// Records converts a tile list into the ordered record collection
// handed to the format writers.
func Records(tiles []*tiler.Tile) []Record {
	records := make([]Record, len(tiles))
	for i, tile := range tiles {
		records[i] = Record{TileID: tile.ID(), Geometry: tile.WGSGeometry()}
	}
	return records
}

// Write serializes records to path in the given format.
func Write(path string, format Format, records []Record) error {
	switch format {
	case FormatGeoJSON:
		return WriteGeoJSON(path, records)
	case FormatShapefile:
		return WriteShapefile(path, records)
	case FormatGeoParquet:
		return WriteGeoParquet(path, records)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
