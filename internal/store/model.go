package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/paulmach/orb/geojson"

	"geotiler/internal/tiler"
)

// TileRow is the PostgreSQL row for one generated tile. The canonical
// tile id is the primary key, so a tile saved twice stays one row; the
// batch id records which run last produced it.
type TileRow struct {
	TileID  string `gorm:"primaryKey;size:64"`
	BatchID string `gorm:"size:36;index;not null"`

	EPSG   int `gorm:"not null"`
	X      int `gorm:"not null"`
	Y      int `gorm:"not null"`
	Width  int `gorm:"not null"`
	Height int `gorm:"not null"`

	// WGS84 footprint as GeoJSON text.
	Geometry string `gorm:"type:text;not null"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (TileRow) TableName() string {
	return "tiles"
}

func rowFromTile(tile *tiler.Tile, batchID string, now time.Time) (TileRow, error) {
	footprint, err := json.Marshal(geojson.NewGeometry(tile.WGSGeometry()))
	if err != nil {
		return TileRow{}, fmt.Errorf("store: marshal footprint for %s: %w", tile.ID(), err)
	}

	x, y := tile.Origin()
	width, height := tile.Size()
	return TileRow{
		TileID:    tile.ID(),
		BatchID:   batchID,
		EPSG:      tile.Zone().EPSG(),
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Geometry:  string(footprint),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
