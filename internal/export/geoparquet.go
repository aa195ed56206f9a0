package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/paulmach/orb/encoding/wkb"
)

// geoparquetRow is the column layout of an exported tile.
type geoparquetRow struct {
	TileID   string `parquet:"tile_id"`
	Geometry []byte `parquet:"geometry"`
}

// WriteGeoParquet writes the records as a GeoParquet file: WKB-encoded
// geometry column plus the "geo" file metadata block identifying it.
func WriteGeoParquet(path string, records []Record) error {
	rows := make([]geoparquetRow, len(records))
	for i, record := range records {
		encoded, err := wkb.Marshal(record.Geometry)
		if err != nil {
			return fmt.Errorf("export: encode WKB for %s: %w", record.TileID, err)
		}
		rows[i] = geoparquetRow{TileID: record.TileID, Geometry: encoded}
	}

	meta, err := json.Marshal(map[string]any{
		"version":        "1.0.0",
		"primary_column": "geometry",
		"columns": map[string]any{
			"geometry": map[string]any{
				"encoding":       "WKB",
				"geometry_types": []string{"Polygon"},
				"crs":            CRSTag,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("export: marshal geo metadata: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}

	writer := parquet.NewGenericWriter[geoparquetRow](file,
		parquet.KeyValueMetadata("geo", string(meta)))
	if _, err := writer.Write(rows); err != nil {
		file.Close()
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		file.Close()
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return file.Close()
}
