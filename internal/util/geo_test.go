package util

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 45, 7, 45, 7, 0, 0.001},
		{"one degree longitude at equator", 0, 0, 0, 1, 111195, 50},
		{"one degree latitude", 35, -106, 36, -106, 111195, 50},
		{"one degree longitude at 60N", 60, 10, 60, 11, 55597, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineDistance(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("got %f, want %f +- %f", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	a := HaversineDistance(35.6, -105.9, 36.1, -106.3)
	b := HaversineDistance(36.1, -106.3, 35.6, -105.9)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance is not symmetric: %f vs %f", a, b)
	}
}
