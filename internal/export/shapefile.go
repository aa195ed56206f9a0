package export

import (
	"fmt"
	"os"
	"strings"

	shp "gitee.com/LJ_COOL/go-shp"
)

// WGS84 well-known text for the .prj sidecar.
const wgs84WKT = `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`

// WriteShapefile writes the records as an ESRI Shapefile with a TILE_ID
// attribute column and a WGS84 .prj sidecar. A .shp extension is
// appended when missing.
func WriteShapefile(path string, records []Record) error {
	if !strings.HasSuffix(path, ".shp") {
		path += ".shp"
	}

	file, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer file.Close()

	fields := []shp.Field{shp.StringField([]byte("TILE_ID"), 64)}
	file.SetFields(fields)

	for i, record := range records {
		parts := make([][]shp.Point, len(record.Geometry))
		for r, ring := range record.Geometry {
			points := make([]shp.Point, len(ring))
			for p, pt := range ring {
				points[p] = shp.Point{X: pt[0], Y: pt[1]}
			}
			parts[r] = points
		}
		file.Write(shp.NewPolyLine(parts))

		if err := file.WriteAttribute(i, 0, record.TileID); err != nil {
			return fmt.Errorf("export: write attribute for %s: %w", record.TileID, err)
		}
	}

	prjPath := strings.TrimSuffix(path, ".shp") + ".prj"
	if err := os.WriteFile(prjPath, []byte(wgs84WKT), 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", prjPath, err)
	}
	return nil
}
