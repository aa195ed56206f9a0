package store

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"geotiler/internal/crs"
	"geotiler/internal/tiler"
)

func TestRowFromTile(t *testing.T) {
	zone, err := crs.FromEPSG(32633)
	if err != nil {
		t.Fatal(err)
	}
	tile, err := tiler.NewTile(zone, 500000, 6000000, 1000, 1000)
	if err != nil {
		t.Fatal(err)
	}

	batchID := "8b55f3a2-7c5e-4f1d-9a6b-2f0f3c9d1e4a"
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	row, err := rowFromTile(tile, batchID, now)
	if err != nil {
		t.Fatal(err)
	}

	if row.TileID != "32633_500000_6000000_1000_1000" {
		t.Errorf("TileID = %q, want 32633_500000_6000000_1000_1000", row.TileID)
	}
	if row.BatchID != batchID {
		t.Errorf("BatchID = %q, want %q", row.BatchID, batchID)
	}
	if row.EPSG != 32633 {
		t.Errorf("EPSG = %d, want 32633", row.EPSG)
	}
	if row.X != 500000 || row.Y != 6000000 {
		t.Errorf("origin = (%d, %d), want (500000, 6000000)", row.X, row.Y)
	}
	if row.Width != 1000 || row.Height != 1000 {
		t.Errorf("size = %dx%d, want 1000x1000", row.Width, row.Height)
	}
	if !row.CreatedAt.Equal(now) || !row.UpdatedAt.Equal(now) {
		t.Errorf("timestamps = %v/%v, want %v", row.CreatedAt, row.UpdatedAt, now)
	}

	// The geometry column holds the WGS84 footprint as GeoJSON text.
	g, err := geojson.UnmarshalGeometry([]byte(row.Geometry))
	if err != nil {
		t.Fatalf("Geometry column is not valid GeoJSON: %v", err)
	}
	polygon, ok := g.Geometry().(orb.Polygon)
	if !ok {
		t.Fatalf("Geometry column holds %T, want Polygon", g.Geometry())
	}
	if len(polygon) != 1 || len(polygon[0]) != 5 {
		t.Fatal("footprint is not a closed 5-vertex ring")
	}
	if !polygon.Equal(tile.WGSGeometry()) {
		t.Error("footprint does not match the tile's WGS84 geometry")
	}
}

func TestTileRowTableName(t *testing.T) {
	if name := (TileRow{}).TableName(); name != "tiles" {
		t.Errorf("table name = %q, want tiles", name)
	}
}
