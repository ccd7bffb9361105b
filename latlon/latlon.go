package latlon

import "math"

const π = math.Pi

// R is the mean earth radius in meters.
const R = 6371e3

type LatLonInterface interface {
	DistanceTo(from, to LatLon) float64
	BearingTo(from, to LatLon) float64
	DistanceAndBearingTo(from, to LatLon) (float64, float64)
	Destination(from LatLon, bearing float64, distance float64) LatLon
}

type LatLon struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

func toRadians(a float64) float64 {
	return a * π / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / π
}

func wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d1 := d + 360.0
	d2 := d1 - float64(int(d1/360.0)*360)
	return d2
}

// wrap180 brings a longitude back into [-180, 180).
func wrap180(d float64) float64 {
	if -180.0 <= d && d < 180.0 {
		return d
	}
	return math.Mod(math.Mod(d+180.0, 360.0)+360.0, 360.0) - 180.0
}

// KmTo returns the distance in kilometers between two positions using the
// given strategy.
func KmTo(l LatLonInterface, from, to LatLon) float64 {
	return l.DistanceTo(from, to) / 1000.0
}
