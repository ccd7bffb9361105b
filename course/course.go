package course

import (
	"errors"
	"fmt"

	"github.com/a-bouts/nav-bot/latlon"
)

// ClosingRadius is the radius in km of the checkpoint appended at the start
// location to close the loop.
const ClosingRadius = 5

type Checkpoint struct {
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Radius    float64 `json:"radius" yaml:"radius"`
	Reached   bool    `json:"reached" yaml:"-"`
}

func (c Checkpoint) LatLon() latlon.LatLon {
	return latlon.LatLon{Lat: c.Latitude, Lon: c.Longitude}
}

// Course is the ordered list of checkpoints of one race. Only the Reached
// flags change once it is built.
type Course struct {
	Name        string       `json:"name" yaml:"name"`
	Checkpoints []Checkpoint `json:"checkpoints" yaml:"checkpoints"`
}

func New(name string, checkpoints []Checkpoint, start latlon.LatLon) *Course {
	cps := make([]Checkpoint, 0, len(checkpoints)+1)
	cps = append(cps, checkpoints...)
	cps = append(cps, Closing(start))
	return &Course{Name: name, Checkpoints: cps}
}

// Closing returns the last checkpoint of every course: back to the start.
func Closing(start latlon.LatLon) Checkpoint {
	return Checkpoint{
		Name:      "Finish",
		Latitude:  start.Lat,
		Longitude: start.Lon,
		Radius:    ClosingRadius}
}

func (c *Course) Len() int {
	return len(c.Checkpoints)
}

func (c *Course) IsReached(index int) bool {
	return c.Checkpoints[index].Reached
}

func (c *Course) HasNextCheckpoint(index int) bool {
	return index < len(c.Checkpoints)
}

func (c *Course) NextCheckpoint(index int) *Checkpoint {
	return &c.Checkpoints[index]
}

// FirstUnreached returns the index of the first checkpoint not reached yet,
// or Len() when the course is complete.
func (c *Course) FirstUnreached() int {
	for i := range c.Checkpoints {
		if !c.Checkpoints[i].Reached {
			return i
		}
	}
	return len(c.Checkpoints)
}

func (c *Course) Clone() *Course {
	cps := make([]Checkpoint, len(c.Checkpoints))
	copy(cps, c.Checkpoints)
	return &Course{Name: c.Name, Checkpoints: cps}
}

var ErrEmptyCourse = errors.New("course has no checkpoint")

func (c *Course) Validate() error {
	if len(c.Checkpoints) == 0 {
		return ErrEmptyCourse
	}
	for i, cp := range c.Checkpoints {
		if !(cp.Latitude >= -90 && cp.Latitude <= 90) {
			return fmt.Errorf("checkpoint %d: latitude %f out of range", i, cp.Latitude)
		}
		if !(cp.Longitude >= -180 && cp.Longitude <= 180) {
			return fmt.Errorf("checkpoint %d: longitude %f out of range", i, cp.Longitude)
		}
		if !(cp.Radius > 0) {
			return fmt.Errorf("checkpoint %d: radius %f must be positive", i, cp.Radius)
		}
	}
	return nil
}
