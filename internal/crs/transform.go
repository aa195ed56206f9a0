package crs

import (
	"fmt"

	"github.com/ctessum/geom/proj"
	"github.com/paulmach/orb"
)

// TransformTo reprojects a geometry expressed in this frame into the
// target frame. Coordinates are always (x, y) ordered, longitude or
// easting first, regardless of either frame's declared axis order.
// The result is a new geometry of the same type with the same vertex
// structure; the input is never modified.
func (f *Frame) TransformTo(target *Frame, g orb.Geometry) (orb.Geometry, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil target frame", ErrUnknownCRS)
	}
	if f.Equal(target) {
		return orb.Clone(g), nil
	}
	tr, err := f.sr.NewTransform(target.sr)
	if err != nil {
		return nil, fmt.Errorf("crs: transform %v -> %v: %w", f, target, err)
	}
	return applyTransform(g, tr)
}

func applyTransform(g orb.Geometry, tr proj.Transformer) (orb.Geometry, error) {
	switch g := g.(type) {
	case orb.Point:
		return transformPoint(g, tr)
	case orb.MultiPoint:
		pts, err := transformPoints([]orb.Point(g), tr)
		return orb.MultiPoint(pts), err
	case orb.LineString:
		pts, err := transformPoints([]orb.Point(g), tr)
		return orb.LineString(pts), err
	case orb.MultiLineString:
		out := make(orb.MultiLineString, len(g))
		for i, ls := range g {
			pts, err := transformPoints([]orb.Point(ls), tr)
			if err != nil {
				return nil, err
			}
			out[i] = orb.LineString(pts)
		}
		return out, nil
	case orb.Ring:
		pts, err := transformPoints([]orb.Point(g), tr)
		return orb.Ring(pts), err
	case orb.Polygon:
		return transformPolygon(g, tr)
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, len(g))
		for i, p := range g {
			tp, err := transformPolygon(p, tr)
			if err != nil {
				return nil, err
			}
			out[i] = tp
		}
		return out, nil
	case orb.Collection:
		out := make(orb.Collection, len(g))
		for i, child := range g {
			tc, err := applyTransform(child, tr)
			if err != nil {
				return nil, err
			}
			out[i] = tc
		}
		return out, nil
	case orb.Bound:
		min, err := transformPoint(g.Min, tr)
		if err != nil {
			return nil, err
		}
		max, err := transformPoint(g.Max, tr)
		if err != nil {
			return nil, err
		}
		return orb.Bound{Min: min, Max: max}, nil
	}
	return nil, fmt.Errorf("crs: unsupported geometry type %T", g)
}

func transformPolygon(p orb.Polygon, tr proj.Transformer) (orb.Polygon, error) {
	out := make(orb.Polygon, len(p))
	for i, ring := range p {
		pts, err := transformPoints([]orb.Point(ring), tr)
		if err != nil {
			return nil, err
		}
		out[i] = orb.Ring(pts)
	}
	return out, nil
}

func transformPoints(pts []orb.Point, tr proj.Transformer) ([]orb.Point, error) {
	out := make([]orb.Point, len(pts))
	for i, pt := range pts {
		tp, err := transformPoint(pt, tr)
		if err != nil {
			return nil, err
		}
		out[i] = tp
	}
	return out, nil
}

func transformPoint(pt orb.Point, tr proj.Transformer) (orb.Point, error) {
	x, y, err := tr(pt[0], pt[1])
	if err != nil {
		return orb.Point{}, fmt.Errorf("crs: transform point (%v, %v): %w", pt[0], pt[1], err)
	}
	return orb.Point{x, y}, nil
}
