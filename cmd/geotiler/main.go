// Command geotiler sweeps a UTM tile grid over a geometry read from a
// GeoJSON file and writes the resulting tiles to a file (GeoJSON,
// Shapefile or GeoParquet) and/or a PostgreSQL table.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog"

	"geotiler/internal/config"
	"geotiler/internal/crs"
	"geotiler/internal/export"
	"geotiler/internal/store"
	"geotiler/internal/tiler"
)

type options struct {
	Input      string  `short:"i" long:"input" description:"Input GeoJSON file (geometry, feature or feature collection)" required:"true"`
	CRS        string  `short:"c" long:"crs" description:"CRS of the input geometry (default from config, EPSG:4326)"`
	TileSize   int     `long:"tile-size" description:"Tile size in UTM meters"`
	Stride     int     `long:"stride" description:"Distance between adjacent tile origins in UTM meters"`
	Resolution float64 `long:"resolution" description:"Zone sampling resolution in WGS84 degrees"`
	Output     string  `short:"o" long:"output" description:"Output file path"`
	Format     string  `short:"f" long:"format" description:"Output format" choice:"geojson" choice:"shp" choice:"geoparquet"`
	DBUrl      string  `long:"db-url" description:"PostgreSQL URL for persisting tiles"`
	Verbose    bool    `short:"v" long:"verbose" description:"Enable debug logging"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if opts.Verbose {
		zl = zl.Level(zerolog.DebugLevel)
	} else {
		zl = zl.Level(zerolog.InfoLevel)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		zl.Fatal().Err(err).Msg("failed to load config")
	}
	applyDefaults(&opts, cfg)

	if opts.Output == "" && opts.DBUrl == "" {
		zl.Fatal().Msg("nothing to do: provide --output and/or --db-url")
	}

	format, err := export.ParseFormat(opts.Format)
	if err != nil && opts.Output != "" {
		zl.Fatal().Err(err).Msg("invalid output format")
	}

	frame, err := crs.Parse(opts.CRS)
	if err != nil {
		zl.Fatal().Err(err).Str("crs", opts.CRS).Msg("failed to resolve input CRS")
	}

	geometry, err := readGeometry(opts.Input)
	if err != nil {
		zl.Fatal().Err(err).Str("input", opts.Input).Msg("failed to read input geometry")
	}

	place, err := tiler.NewPlace(geometry, frame)
	if err != nil {
		zl.Fatal().Err(err).Msg("failed to build place")
	}

	generated := 0
	engine, err := tiler.NewEngine(opts.TileSize, opts.Stride,
		tiler.WithResolution(opts.Resolution),
		tiler.WithProgress(func(tile *tiler.Tile) {
			generated++
			if generated%1000 == 0 {
				zl.Info().Int("tiles", generated).Str("last", tile.ID()).Msg("generating tiles")
			}
		}),
	)
	if err != nil {
		zl.Fatal().Err(err).Msg("invalid sweep parameters")
	}

	zl.Info().
		Int("tile_size", opts.TileSize).
		Int("stride", opts.Stride).
		Float64("resolution", opts.Resolution).
		Msg("sweeping tile grid")

	tiles, err := engine.Tiles(place)
	if err != nil {
		zl.Fatal().Err(err).Msg("tile sweep failed")
	}
	zl.Info().Int("tiles", len(tiles)).Msg("sweep complete")

	records := export.Records(tiles)

	if opts.Output != "" {
		if err := export.Write(opts.Output, format, records); err != nil {
			zl.Fatal().Err(err).Str("output", opts.Output).Msg("export failed")
		}
		zl.Info().Str("output", opts.Output).Str("format", string(format)).Msg("tiles exported")
	}

	if opts.DBUrl != "" {
		st, err := store.Open(opts.DBUrl, zl)
		if err != nil {
			zl.Fatal().Err(err).Msg("failed to open tile store")
		}
		defer st.Close()

		batchID, err := st.SaveTiles(tiles)
		if err != nil {
			zl.Fatal().Err(err).Msg("failed to persist tiles")
		}
		zl.Info().Str("batch_id", batchID).Msg("tiles saved to database")
	}
}

// applyDefaults fills unset flags from the config layer.
func applyDefaults(opts *options, cfg config.Config) {
	if opts.TileSize == 0 {
		opts.TileSize = cfg.TileSize
	}
	if opts.Stride == 0 {
		opts.Stride = cfg.Stride
	}
	if opts.Resolution == 0 {
		opts.Resolution = cfg.ZoneResolution
	}
	if opts.CRS == "" {
		opts.CRS = cfg.InputCRS
	}
	if opts.Format == "" {
		opts.Format = cfg.OutputFormat
	}
	if opts.DBUrl == "" {
		opts.DBUrl = cfg.DBUrl
	}
}

// readGeometry loads a geometry from a GeoJSON file holding a bare
// geometry, a feature, or a feature collection. A collection becomes a
// single geometry: its only member, or an orb.Collection of members.
func readGeometry(path string) (orb.Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse GeoJSON: %w", err)
	}

	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse feature collection: %w", err)
		}
		if len(fc.Features) == 0 {
			return nil, fmt.Errorf("feature collection is empty")
		}
		if len(fc.Features) == 1 {
			return fc.Features[0].Geometry, nil
		}
		collection := make(orb.Collection, len(fc.Features))
		for i, feature := range fc.Features {
			collection[i] = feature.Geometry
		}
		return collection, nil
	case "Feature":
		feature, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("parse feature: %w", err)
		}
		return feature.Geometry, nil
	default:
		geometry, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("parse geometry: %w", err)
		}
		return geometry.Geometry(), nil
	}
}
