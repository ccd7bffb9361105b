package route

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-bot/bot"
	"github.com/a-bouts/nav-bot/latlon"
)

// Params of a preview. Speed is in knots, Delta and MaxDuration in hours.
type Params struct {
	Start       latlon.LatLon `json:"start"`
	Speed       float64       `json:"speed"`
	Delta       float64       `json:"delta"`
	MaxDuration float64       `json:"maxDuration"`
}

// MaxSteps bounds the number of time steps of a preview.
const MaxSteps = 10000

type PreviewPosition struct {
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Bearing    float64 `json:"b"`
	Duration   float64 `json:"d"`
	Checkpoint int     `json:"c"`
}

type Preview struct {
	Track     []PreviewPosition `json:"track"`
	Duration  float64           `json:"duration"`
	Reached   int               `json:"reached"`
	Completed bool              `json:"completed"`
}

func (p *Params) defaults() {
	if !(p.Speed > 0) {
		p.Speed = 12
	}
	if !(p.Delta > 0) {
		p.Delta = 1
	}
	if !(p.MaxDuration > 0) {
		p.MaxDuration = 24
	} else if p.MaxDuration > 24*120 {
		p.MaxDuration = 24 * 120
	}
	if p.Delta < p.MaxDuration/MaxSteps {
		p.Delta = p.MaxDuration / MaxSteps
	}
}

// Follow sails b along its course at constant speed, heading straight to
// the target of every step, and returns the track. b is changed: pass a
// clone to keep a bot untouched.
func Follow(b *bot.Bot, params Params) Preview {
	params.defaults()

	var sph latlon.LatLonSpherical
	start, _ := b.Active()

	pos := params.Start
	duration := 0.0
	result := Preview{Track: make([]PreviewPosition, 0, int(math.Ceil(params.MaxDuration/params.Delta))+1)}
	result.Track = append(result.Track, PreviewPosition{Lat: pos.Lat, Lon: pos.Lon, Checkpoint: start})

	for ok := true; ok; ok = duration < params.MaxDuration {
		ins := b.Run(bot.State{T: duration, Dt: params.Delta, Latitude: pos.Lat, Longitude: pos.Lon, Speed: params.Speed})
		if ins.Location == nil {
			result.Completed = true
			break
		}

		dist := params.Speed * 1.852 * params.Delta * 1000.0
		distTo, bearing := sph.DistanceAndBearingTo(pos, *ins.Location)
		if dist >= distTo {
			pos = *ins.Location
		} else {
			pos = sph.Destination(pos, bearing, dist)
		}
		duration += params.Delta

		active, _ := b.Active()
		result.Track = append(result.Track, PreviewPosition{
			Lat:        pos.Lat,
			Lon:        pos.Lon,
			Bearing:    math.Round(bearing*10) / 10,
			Duration:   duration,
			Checkpoint: active})
	}

	end, _ := b.Active()
	result.Duration = duration
	result.Reached = end - start

	log.Debugf("Preview %d checkpoints in %.1fh (completed %t)", result.Reached, duration, result.Completed)

	return result
}
