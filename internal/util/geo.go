package util

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const earthRadiusMeters = 6371000.0

// HaversineDistance returns the great-circle distance in meters between
// two WGS84 coordinates.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	point1 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat1, lng1))
	point2 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat2, lng2))

	angle := s1.Angle(s2.ChordAngleBetweenPoints(point1, point2).Angle())

	return angle.Radians() * earthRadiusMeters
}
