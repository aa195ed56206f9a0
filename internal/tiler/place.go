package tiler

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"geotiler/internal/crs"
)

// Place is a region of interest: one input geometry together with the
// frame it is expressed in. The WGS84 representation is derived once at
// construction and cached for the life of the object; a Place is
// read-only after construction.
type Place struct {
	frame    *crs.Frame
	geometry orb.Geometry
	wgs      orb.Geometry
}

// NewPlace builds a Place from a geometry and its source frame.
func NewPlace(geometry orb.Geometry, source *crs.Frame) (*Place, error) {
	if geometry == nil {
		return nil, fmt.Errorf("%w: nil geometry", ErrInvalidArgument)
	}
	if source == nil {
		return nil, fmt.Errorf("%w: nil source frame", ErrInvalidArgument)
	}
	wgs, err := source.TransformTo(crs.WGS84(), geometry)
	if err != nil {
		return nil, err
	}
	return &Place{frame: source, geometry: geometry, wgs: wgs}, nil
}

// Frame returns the frame the input geometry is expressed in.
func (p *Place) Frame() *crs.Frame { return p.frame }

// Geometry returns the input geometry in its source frame.
func (p *Place) Geometry() orb.Geometry { return p.geometry }

// WGSGeometry returns the cached WGS84 representation of the geometry.
func (p *Place) WGSGeometry() orb.Geometry { return p.wgs }

// GeoJSON returns the input geometry as a GeoJSON geometry value.
func (p *Place) GeoJSON() *geojson.Geometry {
	return geojson.NewGeometry(p.geometry)
}

// TransformTo reprojects the input geometry into the target frame.
func (p *Place) TransformTo(target *crs.Frame) (orb.Geometry, error) {
	return p.frame.TransformTo(target, p.geometry)
}

// IntersectingUTMZones finds the WGS84 UTM zones the geometry touches
// by sampling a lattice of points spaced resolution degrees apart over
// the geometry's WGS84 bounding box and mapping each point that falls
// inside the geometry to its UTM zone. Zones are returned in ascending
// EPSG order.
//
// Smaller resolutions are more accurate and more expensive. A geometry
// narrower than the resolution can slip between sample points and yield
// an empty result; callers needing exactness should pick a resolution
// finer than the geometry's narrowest extent. The stepped sweep may
// also overshoot the upper bound slightly as floating error
// accumulates, so the exact sample count can vary across platforms.
func (p *Place) IntersectingUTMZones(resolution float64) ([]*crs.Frame, error) {
	if resolution <= 0 || math.IsNaN(resolution) {
		return nil, fmt.Errorf("%w: resolution must be positive, got %v", ErrInvalidArgument, resolution)
	}

	bound := p.wgs.Bound()
	codes := make(map[int]struct{})
	for x := bound.Min[0]; x <= bound.Max[0]; x += resolution {
		for y := bound.Min[1]; y <= bound.Max[1]; y += resolution {
			if !containsPoint(p.wgs, orb.Point{x, y}) {
				continue
			}
			codes[utmEPSGForPoint(x, y)] = struct{}{}
		}
	}

	sorted := make([]int, 0, len(codes))
	for code := range codes {
		sorted = append(sorted, code)
	}
	sort.Ints(sorted)

	zones := make([]*crs.Frame, 0, len(sorted))
	for _, code := range sorted {
		zone, err := crs.FromEPSG(code)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	return zones, nil
}

// utmEPSGForPoint maps a WGS84 longitude/latitude to the EPSG code of
// the UTM zone containing it: 326xx north of the equator, 327xx south.
func utmEPSGForPoint(lon, lat float64) int {
	zone := int(math.Floor((lon+180)/6)) + 1
	if zone > 60 { // lon == 180 wraps into zone 60
		zone = 60
	}
	if lat < 0 {
		return 32700 + zone
	}
	return 32600 + zone
}

// containsPoint reports whether a point lies inside an areal geometry.
// Non-areal geometries contain no sample points.
func containsPoint(g orb.Geometry, pt orb.Point) bool {
	switch g := g.(type) {
	case orb.Ring:
		return planar.RingContains(g, pt)
	case orb.Polygon:
		return planar.PolygonContains(g, pt)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, pt)
	case orb.Collection:
		for _, child := range g {
			if containsPoint(child, pt) {
				return true
			}
		}
	case orb.Bound:
		return g.Contains(pt)
	}
	return false
}
