package api

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-bot/api/model"
	"github.com/a-bouts/nav-bot/bot"
	"github.com/a-bouts/nav-bot/latlon"
	"github.com/a-bouts/nav-bot/metrics"
	"github.com/a-bouts/nav-bot/route"
)

type server struct {
	lock     sync.Mutex
	bot      *bot.Bot
	forecast Forecast
	worldMap bot.WorldMap
	metrics  *metrics.Collector
}

// Forecast is what the server needs from the wind forecasts.
type Forecast interface {
	bot.Forecast
	At(m time.Time, lat float64, lon float64) (float64, float64, bool)
	Origin() time.Time
}

// InitServer routes the race engine requests to b. forecast, worldMap and
// collector may be nil.
func InitServer(b *bot.Bot, forecast Forecast, worldMap bot.WorldMap, collector *metrics.Collector) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	s := &server{
		bot:      b,
		forecast: forecast,
		worldMap: worldMap,
		metrics:  collector,
	}

	router.Use(s.observe)

	router.HandleFunc("/bot/-/healthz", s.healthz).Methods(http.MethodGet)
	if collector != nil {
		router.Handle("/metrics", collector.Handler()).Methods(http.MethodGet)
	}

	apiV1 := router.PathPrefix("/bot/api/v1").Subrouter()
	apiV1.HandleFunc("/identity", s.identity).Methods(http.MethodGet)
	apiV1.HandleFunc("/run", s.run).Methods(http.MethodPost)
	apiV1.HandleFunc("/course", s.course).Methods(http.MethodGet)
	apiV1.HandleFunc("/preview", s.preview).Methods(http.MethodPost)
	apiV1.HandleFunc("/wind/{lat}/{lon}", s.wind).Methods(http.MethodGet)

	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				path = tpl
			}
		}
		s.metrics.ObserveRequest(path, r.Method, rec.status)
	})
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

func (s *server) identity(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(model.Identity{Team: s.bot.Team, Avatar: s.bot.Avatar})
}

func (s *server) run(w http.ResponseWriter, req *http.Request) {
	var tick model.Tick
	if err := json.NewDecoder(req.Body).Decode(&tick); err != nil {
		log.WithError(err).Warn("Bad tick")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state := bot.State{
		T:         tick.T,
		Dt:        tick.Dt,
		Longitude: tick.Longitude,
		Latitude:  tick.Latitude,
		Heading:   tick.Heading,
		Speed:     tick.Speed,
		Vector:    tick.Vector,
		Forecast:  s.forecast,
		WorldMap:  s.worldMap,
	}

	s.lock.Lock()
	start := time.Now()
	instructions := s.bot.Run(state)
	elapsed := time.Since(start)
	active, _ := s.bot.Active()
	s.lock.Unlock()

	s.metrics.ObserveTick(tick.T, active, elapsed)

	log.WithFields(log.Fields{
		"t":      tick.T,
		"lat":    tick.Latitude,
		"lon":    tick.Longitude,
		"active": active,
	}).Debug("Tick")

	json.NewEncoder(w).Encode(instructions)
}

func (s *server) course(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	active, ok := s.bot.Active()
	res := model.Course{
		Name:        s.bot.CourseName(),
		Active:      active,
		Completed:   !ok,
		Checkpoints: s.bot.Checkpoints(),
	}
	s.lock.Unlock()

	json.NewEncoder(w).Encode(res)
}

func (s *server) preview(w http.ResponseWriter, req *http.Request) {
	fields := log.Fields{
		"action": "preview",
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	requestLogger := log.WithFields(fields)

	var params route.Params
	if err := json.NewDecoder(req.Body).Decode(&params); err != nil {
		requestLogger.WithError(err).Warn("Bad preview request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.lock.Lock()
	b := s.bot.Clone()
	s.lock.Unlock()

	start := time.Now()
	p := route.Follow(b, params)
	requestLogger.Infof("Preview from (%.3f,%.3f) took %s", params.Start.Lat, params.Start.Lon, time.Since(start).String())

	json.NewEncoder(w).Encode(p)
}

func (s *server) wind(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(mux.Vars(r)["lat"], 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(mux.Vars(r)["lon"], 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if s.forecast == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	// t is in race hours, the time base of the ticks
	m := time.Now()
	if h := r.URL.Query().Get("t"); h != "" {
		t, err := strconv.ParseFloat(h, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		m = s.forecast.Origin().Add(time.Duration(t * float64(time.Hour)))
	}

	var res model.Wind
	var ok bool
	res.Latlon = latlon.LatLon{Lat: lat, Lon: lon}
	res.Wind, res.Speed, ok = s.forecast.At(m, lat, lon)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	res.Speed *= 1.9438444924406
	if s.worldMap != nil {
		isSea := s.worldMap.IsSea(lat, lon)
		res.IsSea = &isSea
	}

	log.Debugf("Wind (%f,%f) : %.1f° %.1f kt", lat, lon, res.Wind, res.Speed)

	json.NewEncoder(w).Encode(res)
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		ip = strings.TrimSpace(ip)
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}
