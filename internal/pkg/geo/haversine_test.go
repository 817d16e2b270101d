package geo

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
		{
			name: "identical points",
			lat1: 35.6812, lng1: 139.7671,
			lat2: 35.6812, lng2: 139.7671,
			want: 0, tolerance: 1e-9,
		},
		{
			name: "tokyo to osaka",
			lat1: 35.6812, lng1: 139.7671,
			lat2: 34.6937, lng2: 135.5023,
			want: 400, tolerance: 15,
		},
		{
			name: "antipodal points",
			lat1: 0, lng1: 0,
			lat2: 0, lng2: 180,
			want: math.Pi * EarthRadiusKm, tolerance: 1,
		},
		{
			name: "equator one degree of longitude",
			lat1: 0, lng1: 0,
			lat2: 0, lng2: 1,
			want: 111.19, tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineDistance(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("HaversineDistance() = %v, want %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestHaversineDistanceSymmetry(t *testing.T) {
	d1 := HaversineDistance(35.0118, 135.7681, 43.0618, 141.3545)
	d2 := HaversineDistance(43.0618, 141.3545, 35.0118, 135.7681)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance is not symmetric: %v != %v", d1, d2)
	}
}
