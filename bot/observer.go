package bot

import "github.com/a-bouts/nav-bot/course"

// Observers forwards progress to each of its observers in order.
type Observers []Observer

func (obs Observers) CheckpointReached(index int, checkpoint course.Checkpoint, t float64) {
	for _, o := range obs {
		o.CheckpointReached(index, checkpoint, t)
	}
}

func (obs Observers) CourseCompleted(t float64) {
	for _, o := range obs {
		o.CourseCompleted(t)
	}
}
