package land

import (
	"fmt"
	"math"
	"os"
)

// Land is a bitmap of the world, one bit per cell, 1 for land.
type Land struct {
	lat0 float64
	latN float64
	lon0 float64
	lonN float64
	step float64
	data []byte
}

// Resolution of the land file shipped with the server: 1/120°.
const Resolution = 360.0 / 43200.0

func New(step float64, data []byte) *Land {
	return &Land{
		lat0: -90.0,
		latN: 90.0,
		lon0: -180.0,
		lonN: 180.00 - step,
		step: step,
		data: data}
}

// Load reads a land file at the default resolution.
func Load(file string) (*Land, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading land file '%s': %w", file, err)
	}
	return New(Resolution, b), nil
}

// IsLand check if location is land or sea
func (l Land) IsLand(lat float64, lon float64) bool {
	if lon >= 180 {
		lon -= 360
	}

	i := int(math.Round(lat / l.step))
	j := int(math.Round(lon / l.step))

	i0 := int(math.Round(l.lat0 / l.step))
	j0 := int(math.Round(l.lon0 / l.step))
	jN := int(math.Round(l.lonN / l.step))

	di := i - i0
	dj := j - j0
	nj := jN - j0 + 1

	if dj >= nj {
		dj -= nj
	}

	p := di*nj + dj

	pB := p / 8
	pb := uint(p % 8)

	if p < 0 || pB >= len(l.data) {
		return false
	}

	return ((l.data[pB] >> (7 - pb)) & 0x01) == 0x01
}

func (l Land) IsSea(lat float64, lon float64) bool {
	return !l.IsLand(lat, lon)
}
