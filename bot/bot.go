// Package bot steers a boat along a fixed course.
//
// At every time step the race engine hands the bot the state of the boat and
// gets back Instructions: full sail, heading to the first checkpoint not
// reached yet. A checkpoint is reached as soon as the boat is closer to it than
// its radius, and stays reached for the rest of the race.
package bot

import (
	"github.com/a-bouts/nav-bot/course"
	"github.com/a-bouts/nav-bot/latlon"
)

// FullSail is the only sail setting the bot ever uses.
const FullSail = 1.0

// Forecast gives the wind (u, v in m/s) at a position, t hours after the
// start of the race.
type Forecast interface {
	GetUV(lat, lon, t float64) (float64, float64)
}

// WorldMap tells sea from land.
type WorldMap interface {
	IsSea(lat, lon float64) bool
}

// State is what the race engine knows about the boat at a time step.
type State struct {
	T         float64
	Dt        float64
	Longitude float64
	Latitude  float64
	Heading   float64
	Speed     float64
	Vector    [2]float64
	Forecast  Forecast
	WorldMap  WorldMap
}

func (s State) LatLon() latlon.LatLon {
	return latlon.LatLon{Lat: s.Latitude, Lon: s.Longitude}
}

// Instructions for the next time step. A nil Location means the course is
// complete and the boat keeps its heading.
type Instructions struct {
	Sail     float64        `json:"sail"`
	Location *latlon.LatLon `json:"location,omitempty"`
}

// Observer is told about the progress of the bot on its course. It is called
// synchronously from Run and must not block.
type Observer interface {
	CheckpointReached(index int, checkpoint course.Checkpoint, t float64)
	CourseCompleted(t float64)
}

type Bot struct {
	Team   string
	Avatar string

	course   *course.Course
	next     int
	done     bool
	geodesy  latlon.LatLonInterface
	observer Observer
}

type Option func(*Bot)

func WithObserver(o Observer) Option {
	return func(b *Bot) {
		b.observer = o
	}
}

// WithGeodesy replaces the spherical law of cosines used to measure the
// distance to checkpoints.
func WithGeodesy(g latlon.LatLonInterface) Option {
	return func(b *Bot) {
		b.geodesy = g
	}
}

// New takes ownership of c.
func New(team string, avatar string, c *course.Course, opts ...Option) *Bot {
	b := &Bot{
		Team:    team,
		Avatar:  avatar,
		course:  c,
		next:    c.FirstUnreached(),
		geodesy: latlon.LatLonSpherical{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.done = !c.HasNextCheckpoint(b.next)
	return b
}

// Run is called by the race engine at every time step.
func (b *Bot) Run(state State) Instructions {
	instructions := Instructions{Sail: FullSail}
	position := state.LatLon()

	for b.course.HasNextCheckpoint(b.next) {
		ch := b.course.NextCheckpoint(b.next)
		if !ch.Reached {
			dist := latlon.KmTo(b.geodesy, position, ch.LatLon())
			if dist < ch.Radius {
				ch.Reached = true
				if b.observer != nil {
					b.observer.CheckpointReached(b.next, *ch, state.T)
				}
			}
		}
		if !ch.Reached {
			target := ch.LatLon()
			instructions.Location = &target
			return instructions
		}
		b.next++
	}

	if !b.done {
		b.done = true
		if b.observer != nil {
			b.observer.CourseCompleted(state.T)
		}
	}

	return instructions
}

// Active returns the index of the checkpoint the bot is heading to, false
// once the course is complete.
func (b *Bot) Active() (int, bool) {
	return b.next, b.course.HasNextCheckpoint(b.next)
}

// Checkpoints returns a copy of the course.
func (b *Bot) Checkpoints() []course.Checkpoint {
	return b.course.Clone().Checkpoints
}

func (b *Bot) CourseName() string {
	return b.course.Name
}

// Clone returns an independent bot at the same point of the course, without
// observer.
func (b *Bot) Clone() *Bot {
	return &Bot{
		Team:    b.Team,
		Avatar:  b.Avatar,
		course:  b.course.Clone(),
		next:    b.next,
		done:    b.done,
		geodesy: b.geodesy,
	}
}
