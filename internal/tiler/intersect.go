package tiler

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// rectIntersects reports whether the axis-aligned rectangle b touches a
// geometry anywhere, boundary contact included. A shared corner or edge
// counts as intersecting.
func rectIntersects(b orb.Bound, g orb.Geometry) bool {
	if g == nil {
		return false
	}
	if !b.Intersects(g.Bound()) {
		return false
	}

	switch g := g.(type) {
	case orb.Point:
		return b.Contains(g)
	case orb.MultiPoint:
		for _, pt := range g {
			if b.Contains(pt) {
				return true
			}
		}
	case orb.LineString:
		return rectIntersectsLine(b, g)
	case orb.MultiLineString:
		for _, ls := range g {
			if rectIntersectsLine(b, ls) {
				return true
			}
		}
	case orb.Ring:
		return rectIntersectsPolygon(b, orb.Polygon{g})
	case orb.Polygon:
		return rectIntersectsPolygon(b, g)
	case orb.MultiPolygon:
		for _, p := range g {
			if rectIntersectsPolygon(b, p) {
				return true
			}
		}
	case orb.Collection:
		for _, child := range g {
			if rectIntersects(b, child) {
				return true
			}
		}
	case orb.Bound:
		// Bound x bound overlap was decided above.
		return true
	}
	return false
}

func rectIntersectsPolygon(b orb.Bound, p orb.Polygon) bool {
	// Any polygon vertex inside the rectangle covers the partial and
	// the polygon-inside-rectangle cases.
	for _, ring := range p {
		for _, pt := range ring {
			if b.Contains(pt) {
				return true
			}
		}
	}

	// Any rectangle corner interior to the polygon covers the
	// rectangle-inside-polygon case, holes respected.
	for _, corner := range rectCorners(b) {
		if planar.PolygonContains(p, corner) {
			return true
		}
	}

	// Remaining case: edges cross without either shape holding a
	// vertex of the other.
	edges := rectEdges(b)
	for _, ring := range p {
		for i := 0; i+1 < len(ring); i++ {
			for _, e := range edges {
				if segmentsIntersect(ring[i], ring[i+1], e[0], e[1]) {
					return true
				}
			}
		}
	}
	return false
}

func rectIntersectsLine(b orb.Bound, ls orb.LineString) bool {
	for _, pt := range ls {
		if b.Contains(pt) {
			return true
		}
	}
	edges := rectEdges(b)
	for i := 0; i+1 < len(ls); i++ {
		for _, e := range edges {
			if segmentsIntersect(ls[i], ls[i+1], e[0], e[1]) {
				return true
			}
		}
	}
	return false
}

func rectCorners(b orb.Bound) [4]orb.Point {
	return [4]orb.Point{
		{b.Min[0], b.Min[1]},
		{b.Max[0], b.Min[1]},
		{b.Max[0], b.Max[1]},
		{b.Min[0], b.Max[1]},
	}
}

func rectEdges(b orb.Bound) [4][2]orb.Point {
	c := rectCorners(b)
	return [4][2]orb.Point{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}

// segmentsIntersect reports whether segments p1-p2 and q1-q2 share any
// point, endpoint and collinear contact included.
func segmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}
	return false
}

// cross is the z component of (b-a) x (c-a): positive when c lies left
// of a-b, zero when collinear.
func cross(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// onSegment reports whether c, already known collinear with a-b, lies
// within the segment's extent.
func onSegment(a, b, c orb.Point) bool {
	return min(a[0], b[0]) <= c[0] && c[0] <= max(a[0], b[0]) &&
		min(a[1], b[1]) <= c[1] && c[1] <= max(a[1], b[1])
}
