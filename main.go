package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-bot/api"
	"github.com/a-bouts/nav-bot/bot"
	"github.com/a-bouts/nav-bot/course"
	"github.com/a-bouts/nav-bot/land"
	"github.com/a-bouts/nav-bot/latlon"
	"github.com/a-bouts/nav-bot/metrics"
	"github.com/a-bouts/nav-bot/wind"
	"github.com/a-bouts/nav-bot/xmpp"
)

// parseFlags reads args, then the environment, then the -config file.
func parseFlags(fs *flag.FlagSet, args []string) error {
	return ff.Parse(fs, args,
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser))
}

func main() {

	fs := flag.NewFlagSet("nav-bot", flag.ExitOnError)
	var (
		addr         = fs.String("addr", ":8888", "listen address")
		team         = fs.String("team", "NavBot", "team name")
		avatar       = fs.String("avatar", "", "avatar url")
		startLat     = fs.Float64("start-lat", course.DefaultStart.Lat, "latitude of the start, and of the finish")
		startLon     = fs.Float64("start-lon", course.DefaultStart.Lon, "longitude of the start, and of the finish")
		courseFile   = fs.String("course", "", "yaml or json course file, the Vendée Globe when empty")
		landFile     = fs.String("land", "", "land bitmap")
		gribDir      = fs.String("grib-dir", "", "directory of the GRIB forecasts")
		raceStart    = fs.String("race-start", "", "RFC 3339 date of the start of the race, now when empty")
		logLevel     = fs.String("log-level", "info", "trace, debug, info, warn or error")
		logFile      = fs.String("log-file", "", "rotating log file")
		cpuProfile   = fs.String("cpuprofile", "", "write a cpu profile into this directory")
		xmppHost     = fs.String("xmpp-host", "", "")
		xmppJid      = fs.String("xmpp-jid", "", "")
		xmppPassword = fs.String("xmpp-password", "", "")
		xmppTo       = fs.String("xmpp-to", "", "")
		_            = fs.String("config", "", "config file")
	)
	if err := parseFlags(fs, os.Args[1:]); err != nil {
		log.WithError(err).Fatal("Bad configuration")
	}

	if err := initLogger(*logLevel, *logFile); err != nil {
		log.WithError(err).Fatal("Bad log level")
	}

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.NoShutdownHook).Stop()
	}

	start := latlon.LatLon{Lat: *startLat, Lon: *startLon}
	c := course.Vendee(start)
	if *courseFile != "" {
		var err error
		if c, err = course.Load(*courseFile, start); err != nil {
			log.WithError(err).Fatal("Error loading course")
		}
	}
	log.WithFields(log.Fields{"course": c.Name, "checkpoints": c.Len()}).Info("Course loaded")

	var worldMap bot.WorldMap
	if *landFile != "" {
		log.Info("Load lands")
		l, err := land.Load(*landFile)
		if err != nil {
			log.WithError(err).Fatal("Error loading lands")
		}
		worldMap = l
	}

	var forecast api.Forecast
	if *gribDir != "" {
		origin := time.Now()
		if *raceStart != "" {
			var err error
			if origin, err = time.Parse(time.RFC3339, *raceStart); err != nil {
				log.WithError(err).Fatal("Bad race start")
			}
		}
		log.Info("Load winds")
		winds := wind.InitWinds(*gribDir, origin)
		s := winds.Schedule(15)
		go s.Start()
		forecast = winds
	}

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		log.WithError(err).Fatal("Error registering metrics")
	}
	observers := bot.Observers{collector}

	x := xmpp.Xmpp{Config: xmpp.Config{Host: *xmppHost, Jid: *xmppJid, Password: *xmppPassword, To: *xmppTo}}
	var notifier *xmpp.Notifier
	if x.Enabled() {
		notifier = xmpp.NewNotifier(*team, x)
		observers = append(observers, notifier)
	}

	b := bot.New(*team, *avatar, c, bot.WithObserver(observers))

	router := api.InitServer(b, forecast, worldMap, collector)
	srv := &http.Server{
		Addr: *addr,
		Handler: handlers.RecoveryHandler(handlers.RecoveryLogger(log.StandardLogger()))(
			handlers.CORS(
				handlers.AllowedOrigins([]string{"*"}),
				handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
				handlers.AllowedHeaders([]string{"Content-Type"}),
			)(router)),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("addr", *addr).Info("Start server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Error shutting down")
	}
	if notifier != nil {
		notifier.Wait()
	}
}
