package export

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/paulmach/orb/geojson"

	"geotiler/internal/util"
)

// WriteGeoJSON writes the records as a GeoJSON FeatureCollection. Each
// feature carries the tile id plus its measured ground dimensions, so
// the output can be eyeballed in a viewer without reprojecting.
func WriteGeoJSON(path string, records []Record) error {
	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{
		"crs": map[string]any{
			"type":       "name",
			"properties": map[string]any{"name": CRSTag},
		},
	}

	for _, record := range records {
		feature := geojson.NewFeature(record.Geometry)
		feature.Properties["tile_id"] = record.TileID

		if ring := record.Geometry[0]; len(ring) == 5 {
			// Corners in sweep order: ll, lr, ur, ul.
			ll, lr, ur, ul := ring[0], ring[1], ring[2], ring[3]
			bottomWidth := util.HaversineDistance(ll[1], ll[0], lr[1], lr[0])
			topWidth := util.HaversineDistance(ul[1], ul[0], ur[1], ur[0])
			leftHeight := util.HaversineDistance(ll[1], ll[0], ul[1], ul[0])
			rightHeight := util.HaversineDistance(lr[1], lr[0], ur[1], ur[0])

			feature.Properties["width_m"] = roundMeters((topWidth + bottomWidth) / 2)
			feature.Properties["height_m"] = roundMeters((leftHeight + rightHeight) / 2)
		}

		fc.Append(feature)
	}

	jsonData, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal GeoJSON: %w", err)
	}
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

func roundMeters(value float64) float64 {
	return math.Round(value*1000) / 1000
}
