package latlon

import (
	"math"
	"testing"
)

func TestDistanceTo(t *testing.T) {
	// one degree of longitude on the equator
	p1 := LatLon{Lat: 0, Lon: 0}
	p2 := LatLon{Lat: 0, Lon: 1}

	for name, l := range map[string]LatLonInterface{"spherical": LatLonSpherical{}, "haversine": LatLonHaversine{}} {
		d := l.DistanceTo(p1, p2)
		if math.Round(d) != 111195 {
			t.Errorf("%s: {%f,%f}.distanceTo({%f,%f}) = %f; want 111195", name, p1.Lat, p1.Lon, p2.Lat, p2.Lon, d)
		}

		d = l.DistanceTo(p2, p1)
		if math.Round(d) != 111195 {
			t.Errorf("%s: {%f,%f}.distanceTo({%f,%f}) = %f; want 111195", name, p2.Lat, p2.Lon, p1.Lat, p1.Lon, d)
		}
	}
}

func TestDistanceToSamePoint(t *testing.T) {
	points := []LatLon{
		{Lat: 0, Lon: 0},
		{Lat: 46.470243, Lon: -1.788456},
		{Lat: 74.369396, Lon: -63.317311},
		{Lat: -8.787996, Lon: 115.728954},
	}

	for _, p := range points {
		d := LatLonSpherical{}.DistanceTo(p, p)
		if math.IsNaN(d) || d > 1 {
			t.Errorf("{%f,%f}.distanceTo(itself) = %f; want ~0", p.Lat, p.Lon, d)
		}
	}
}

func TestDistanceAcrossAntimeridian(t *testing.T) {
	p1 := LatLon{Lat: 0, Lon: 179.5}
	p2 := LatLon{Lat: 0, Lon: -179.5}

	d := LatLonSpherical{}.DistanceTo(p1, p2)
	if math.Round(d) != 111195 {
		t.Errorf("{%f,%f}.distanceTo({%f,%f}) = %f; want 111195", p1.Lat, p1.Lon, p2.Lat, p2.Lon, d)
	}
}

func TestBearingTo(t *testing.T) {
	tests := []struct {
		from, to LatLon
		want     float64
	}{
		{LatLon{Lat: 0, Lon: 0}, LatLon{Lat: 0, Lon: 1}, 90},
		{LatLon{Lat: 0, Lon: 0}, LatLon{Lat: 1, Lon: 0}, 0},
		{LatLon{Lat: 0, Lon: 0}, LatLon{Lat: -1, Lon: 0}, 180},
		{LatLon{Lat: 0, Lon: 0}, LatLon{Lat: 0, Lon: -1}, 270},
		{LatLon{Lat: 0, Lon: 179.5}, LatLon{Lat: 0, Lon: -179.5}, 90},
	}

	for _, tt := range tests {
		d := LatLonSpherical{}.BearingTo(tt.from, tt.to)
		if math.Round(d) != tt.want {
			t.Errorf("{%f,%f}.bearingTo({%f,%f}) = %f; want %f", tt.from.Lat, tt.from.Lon, tt.to.Lat, tt.to.Lon, d, tt.want)
		}
		d = LatLonHaversine{}.BearingTo(tt.from, tt.to)
		if math.Round(d) != tt.want {
			t.Errorf("haversine {%f,%f}.bearingTo({%f,%f}) = %f; want %f", tt.from.Lat, tt.from.Lon, tt.to.Lat, tt.to.Lon, d, tt.want)
		}
	}
}

func TestDestination(t *testing.T) {
	l := LatLonSpherical{}
	from := LatLon{Lat: 46.470243, Lon: -1.788456}
	to := LatLon{Lat: 47.259668, Lon: -12.307703}

	d, b := l.DistanceAndBearingTo(from, to)
	res := l.Destination(from, b, d)
	if math.Abs(res.Lat-to.Lat) > 1e-6 || math.Abs(res.Lon-to.Lon) > 1e-6 {
		t.Errorf("destination({%f,%f}, %f, %f) = {%f,%f}; want {%f,%f}", from.Lat, from.Lon, b, d, res.Lat, res.Lon, to.Lat, to.Lon)
	}

	res = l.Destination(LatLon{Lat: 0, Lon: 179.5}, 90, 111195)
	if math.Abs(res.Lon+179.5) > 1e-3 {
		t.Errorf("destination across antimeridian = {%f,%f}; want {0,-179.5}", res.Lat, res.Lon)
	}
}

func TestWrap180(t *testing.T) {
	tests := map[float64]float64{0: 0, 180: -180, 190: -170, -190: 170, 540: -180, -180: -180}
	for in, want := range tests {
		if got := wrap180(in); got != want {
			t.Errorf("wrap180(%f) = %f; want %f", in, got, want)
		}
	}
}
