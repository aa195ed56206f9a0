package tiler

import (
	"fmt"
	"iter"
	"math"
)

// Default sweep parameters.
const (
	DefaultTileSize   = 1000
	DefaultStride     = 1000
	DefaultResolution = 0.1
)

// Engine sweeps tile grids over the UTM zones a Place intersects. An
// Engine holds only parameters; every generated sequence re-derives the
// zones and resweeps, so one Engine can serve many places and a
// sequence can be ranged over more than once.
type Engine struct {
	tileSize   int
	stride     int
	resolution float64
	progress   func(*Tile)
}

// Option configures an Engine.
type Option func(*Engine)

// WithResolution sets the WGS84-degree sampling resolution used for
// zone discovery.
func WithResolution(resolution float64) Option {
	return func(e *Engine) { e.resolution = resolution }
}

// WithProgress installs a callback invoked once per emitted tile.
func WithProgress(fn func(*Tile)) Option {
	return func(e *Engine) { e.progress = fn }
}

// NewEngine builds an Engine for a given tile size and stride, both in
// UTM meters. Stride may differ from tile size: a smaller stride
// overlaps tiles, a larger one leaves gaps. Both must be positive.
func NewEngine(tileSize, stride int, opts ...Option) (*Engine, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size must be positive, got %d", ErrInvalidArgument, tileSize)
	}
	if stride <= 0 {
		return nil, fmt.Errorf("%w: stride must be positive, got %d", ErrInvalidArgument, stride)
	}
	e := &Engine{tileSize: tileSize, stride: stride, resolution: DefaultResolution}
	for _, opt := range opts {
		opt(e)
	}
	if e.resolution <= 0 || math.IsNaN(e.resolution) {
		return nil, fmt.Errorf("%w: resolution must be positive, got %v", ErrInvalidArgument, e.resolution)
	}
	return e, nil
}

// Generate returns a lazy sequence of the tiles covering the place.
//
// For each UTM zone the place intersects, in ascending EPSG order, the
// geometry is reprojected into the zone and a grid is swept over its
// bounding box. The sweep origin is snapped down to a multiple of the
// tile size, anchoring tile boundaries to the zone's own origin rather
// than the geometry's bounds, so the same region tiled at different
// extents produces compatible tile ids. Within a zone, tiles are
// emitted in increasing-x-major, increasing-y-minor order; only tiles
// whose UTM rectangle touches the geometry are emitted, boundary
// contact included.
//
// The sweep runs while x < maxx and y < maxy, so with a stride larger
// than the tile size the final row or column before the upper bound can
// be skipped. Errors end the sequence; ranging over it again restarts
// from scratch.
func (e *Engine) Generate(p *Place) iter.Seq2[*Tile, error] {
	return func(yield func(*Tile, error) bool) {
		zones, err := p.IntersectingUTMZones(e.resolution)
		if err != nil {
			yield(nil, err)
			return
		}

		size := float64(e.tileSize)
		stride := float64(e.stride)

		for _, zone := range zones {
			geometry, err := p.TransformTo(zone)
			if err != nil {
				yield(nil, err)
				return
			}

			bound := geometry.Bound()
			xStart := bound.Min[0] - floorMod(bound.Min[0], size)
			yStart := bound.Min[1] - floorMod(bound.Min[1], size)

			for x := xStart; x < bound.Max[0]; x += stride {
				for y := yStart; y < bound.Max[1]; y += stride {
					tile, err := NewTile(zone, x, y, size, size)
					if err != nil {
						yield(nil, err)
						return
					}
					if !rectIntersects(tile.Bound(), geometry) {
						continue
					}
					if e.progress != nil {
						e.progress(tile)
					}
					if !yield(tile, nil) {
						return
					}
				}
			}
		}
	}
}

// Tiles collects the full sweep into a slice.
func (e *Engine) Tiles(p *Place) ([]*Tile, error) {
	var tiles []*Tile
	for tile, err := range e.Generate(p) {
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, tile)
	}
	return tiles, nil
}

// floorMod is the remainder of a/m with the sign of m, matching the
// snap-down grid alignment for bounds below the axis origin.
func floorMod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}
