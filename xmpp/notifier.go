package xmpp

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-bot/course"
)

// Notifier tells the team on xmpp when the boat reaches a checkpoint.
type Notifier struct {
	team string
	send func(string) error
	wg   sync.WaitGroup
}

func NewNotifier(team string, x Xmpp) *Notifier {
	return &Notifier{team: team, send: x.Send}
}

func duration(t float64) string {
	return fmt.Sprintf("%dj %.1fh", int(t/24.0), t-24.0*float64(int(t/24.0)))
}

func (n *Notifier) notify(message string) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.send(message); err != nil {
			log.WithError(err).Warn("Error sending xmpp message")
		}
	}()
}

func (n *Notifier) CheckpointReached(index int, checkpoint course.Checkpoint, t float64) {
	name := checkpoint.Name
	if name == "" {
		name = fmt.Sprintf("#%d", index)
	}
	n.notify(fmt.Sprintf("%s : checkpoint %s reached after %s", n.team, name, duration(t)))
}

func (n *Notifier) CourseCompleted(t float64) {
	n.notify(fmt.Sprintf("%s : course completed in %s", n.team, duration(t)))
}

// Wait blocks until the pending messages are sent.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
