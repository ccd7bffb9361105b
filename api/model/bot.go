package model

import (
	"github.com/a-bouts/nav-bot/course"
	"github.com/a-bouts/nav-bot/latlon"
)

// Tick is the state of the boat sent by the race engine at every time step.
type Tick struct {
	T         float64    `json:"t"`
	Dt        float64    `json:"dt"`
	Longitude float64    `json:"longitude"`
	Latitude  float64    `json:"latitude"`
	Heading   float64    `json:"heading"`
	Speed     float64    `json:"speed"`
	Vector    [2]float64 `json:"vector"`
}

type Identity struct {
	Team   string `json:"team"`
	Avatar string `json:"avatar,omitempty"`
}

type Course struct {
	Name        string              `json:"name"`
	Active      int                 `json:"active"`
	Completed   bool                `json:"completed"`
	Checkpoints []course.Checkpoint `json:"checkpoints"`
}

type Wind struct {
	Latlon latlon.LatLon `json:"latlon"`
	Wind   float64       `json:"wind"`
	Speed  float64       `json:"speed"`
	IsSea  *bool         `json:"isSea,omitempty"`
}
