// Package tiler partitions geometries into regular grids of fixed-size
// square tiles expressed in locally-accurate UTM zones. A Place owns an
// input geometry and discovers the UTM zones it spans; an Engine sweeps
// a size/stride grid over each zone and yields the Tiles that intersect
// the geometry, each with a stable identifier and a WGS84 footprint.
package tiler

import "errors"

var (
	// ErrInvalidArgument marks usage errors: non-positive tile sizes,
	// strides or sampling resolutions.
	ErrInvalidArgument = errors.New("tiler: invalid argument")

	// ErrTileID marks tile identifier strings that do not parse into
	// exactly five numeric fields with a valid EPSG code first.
	ErrTileID = errors.New("tiler: malformed tile id")
)
