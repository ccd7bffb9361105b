package route

import (
	"testing"

	"github.com/a-bouts/nav-bot/bot"
	"github.com/a-bouts/nav-bot/course"
	"github.com/a-bouts/nav-bot/latlon"
)

func equator() *course.Course {
	return course.New("equator", []course.Checkpoint{
		{Latitude: 0, Longitude: 1, Radius: 5},
		{Latitude: 0, Longitude: 2, Radius: 5},
	}, latlon.LatLon{Lat: 0, Lon: 0})
}

func TestFollowCompletesCourse(t *testing.T) {
	b := bot.New("team", "", equator())

	p := Follow(b.Clone(), Params{Start: latlon.LatLon{Lat: 0, Lon: 0}, Speed: 12, Delta: 1, MaxDuration: 48})

	if !p.Completed {
		t.Errorf("Follow() completed = false after %.1fh; want true", p.Duration)
	}
	if p.Reached != 3 {
		t.Errorf("Follow() reached = %d; want 3", p.Reached)
	}
	if p.Duration >= 48 {
		t.Errorf("Follow() duration = %f; want < 48", p.Duration)
	}
	if len(p.Track) < 2 || p.Track[0].Lat != 0 || p.Track[0].Lon != 0 {
		t.Errorf("Follow() track = %v; want to start at {0, 0}", p.Track)
	}

	if i, ok := b.Active(); i != 0 || !ok {
		t.Errorf("original bot Active() = (%d, %t); want (0, true)", i, ok)
	}
}

func TestFollowStopsAtMaxDuration(t *testing.T) {
	b := bot.New("team", "", course.Vendee(course.DefaultStart))

	p := Follow(b, Params{Start: course.DefaultStart, Speed: 10, Delta: 1, MaxDuration: 6})

	if p.Completed {
		t.Errorf("Follow() completed the race in 6h")
	}
	if p.Duration != 6 {
		t.Errorf("Follow() duration = %f; want 6", p.Duration)
	}
	if len(p.Track) != 7 {
		t.Errorf("Follow() track has %d positions; want 7", len(p.Track))
	}
	// heading west to the bay of Biscay
	for _, pos := range p.Track[1:] {
		if pos.Bearing < 250 || pos.Bearing > 300 {
			t.Errorf("Follow() bearing = %f; want west", pos.Bearing)
		}
	}
}

func TestFollowDefaults(t *testing.T) {
	p := Params{}
	p.defaults()

	if p.Speed != 12 || p.Delta != 1 || p.MaxDuration != 24 {
		t.Errorf("defaults() = %+v; want speed 12, delta 1, max 24", p)
	}

	p = Params{MaxDuration: 1e6}
	p.defaults()
	if p.MaxDuration != 24*120 {
		t.Errorf("defaults() max duration = %f; want %d", p.MaxDuration, 24*120)
	}
}

func TestFollowTinyDelta(t *testing.T) {
	p := Params{Delta: 1e-12, MaxDuration: 24 * 120}
	p.defaults()

	if p.Delta != 24*120.0/MaxSteps {
		t.Errorf("defaults() delta = %g; want %g", p.Delta, 24*120.0/MaxSteps)
	}

	b := bot.New("team", "", course.Vendee(course.DefaultStart))
	res := Follow(b, Params{Start: course.DefaultStart, Speed: 12, Delta: 1e-12, MaxDuration: 24 * 120})

	if len(res.Track) > MaxSteps+2 {
		t.Errorf("Follow() track has %d positions; want at most %d", len(res.Track), MaxSteps+2)
	}
}
