package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/a-bouts/nav-bot/course"
)

// Collector bundles the Prometheus metrics of the bot. It observes the bot
// progress and the HTTP requests.
type Collector struct {
	gatherer prometheus.Gatherer

	Ticks              prometheus.Counter
	TickDurations      prometheus.Histogram
	CheckpointsReached prometheus.Counter
	ActiveCheckpoint   prometheus.Gauge
	Completed          prometheus.Gauge
	RaceHours          prometheus.Gauge
	Requests           *prometheus.CounterVec
}

// NewCollector registers the metrics against reg, the global Prometheus
// registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}

	var err error
	if c.Ticks, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bot_ticks_total",
		Help: "Number of time steps handled by the bot.",
	}), "bot_ticks_total"); err != nil {
		return nil, err
	}
	if c.TickDurations, err = registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bot_tick_duration_seconds",
		Help:    "Time spent computing the instructions of a time step.",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
	}), "bot_tick_duration_seconds"); err != nil {
		return nil, err
	}
	if c.CheckpointsReached, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bot_checkpoints_reached_total",
		Help: "Number of checkpoints reached since the start of the race.",
	}), "bot_checkpoints_reached_total"); err != nil {
		return nil, err
	}
	if c.ActiveCheckpoint, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bot_active_checkpoint",
		Help: "Index of the checkpoint the boat is heading to.",
	}), "bot_active_checkpoint"); err != nil {
		return nil, err
	}
	if c.Completed, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bot_course_completed",
		Help: "1 once every checkpoint of the course is reached.",
	}), "bot_course_completed"); err != nil {
		return nil, err
	}
	if c.RaceHours, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bot_race_hours",
		Help: "Race time of the last time step, in hours.",
	}), "bot_race_hours"); err != nil {
		return nil, err
	}
	if c.Requests, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_http_requests_total",
		Help: "Number of HTTP requests, labeled by route, method and status code.",
	}, []string{"route", "method", "code"}), "bot_http_requests_total"); err != nil {
		return nil, err
	}

	return c, nil
}

// ObserveTick records a handled time step.
func (c *Collector) ObserveTick(t float64, active int, d time.Duration) {
	if c == nil {
		return
	}
	c.Ticks.Inc()
	c.TickDurations.Observe(d.Seconds())
	c.ActiveCheckpoint.Set(float64(active))
	c.RaceHours.Set(t)
}

func (c *Collector) CheckpointReached(index int, checkpoint course.Checkpoint, t float64) {
	if c == nil {
		return
	}
	c.CheckpointsReached.Inc()
}

func (c *Collector) CourseCompleted(t float64) {
	if c == nil {
		return
	}
	c.Completed.Set(1)
}

func (c *Collector) ObserveRequest(route string, method string, code int) {
	if c == nil {
		return
	}
	c.Requests.WithLabelValues(route, method, fmt.Sprintf("%d", code)).Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func alreadyRegistered(err error, name string) (prometheus.Collector, error) {
	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		return are.ExistingCollector, nil
	}
	return nil, fmt.Errorf("registering %s: %w", name, err)
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		existing, err := alreadyRegistered(err, name)
		if err != nil {
			return nil, err
		}
		if c, ok := existing.(prometheus.Counter); ok {
			return c, nil
		}
		return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		existing, err := alreadyRegistered(err, name)
		if err != nil {
			return nil, err
		}
		if v, ok := existing.(*prometheus.CounterVec); ok {
			return v, nil
		}
		return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, histogram prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(histogram); err != nil {
		existing, err := alreadyRegistered(err, name)
		if err != nil {
			return nil, err
		}
		if h, ok := existing.(prometheus.Histogram); ok {
			return h, nil
		}
		return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
	}
	return histogram, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		existing, err := alreadyRegistered(err, name)
		if err != nil {
			return nil, err
		}
		if g, ok := existing.(prometheus.Gauge); ok {
			return g, nil
		}
		return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
	}
	return gauge, nil
}
