package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	c, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if c.TileSize != 1000 {
		t.Errorf("TileSize = %d, want 1000", c.TileSize)
	}
	if c.Stride != 1000 {
		t.Errorf("Stride = %d, want 1000", c.Stride)
	}
	if c.ZoneResolution != 0.1 {
		t.Errorf("ZoneResolution = %f, want 0.1", c.ZoneResolution)
	}
	if c.InputCRS != "EPSG:4326" {
		t.Errorf("InputCRS = %q, want EPSG:4326", c.InputCRS)
	}
	if c.OutputFormat != "geojson" {
		t.Errorf("OutputFormat = %q, want geojson", c.OutputFormat)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TILE_SIZE", "2500")
	t.Setenv("OUTPUT_FORMAT", "shp")

	c, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if c.TileSize != 2500 {
		t.Errorf("TileSize = %d, want 2500", c.TileSize)
	}
	if c.OutputFormat != "shp" {
		t.Errorf("OutputFormat = %q, want shp", c.OutputFormat)
	}
}
