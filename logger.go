package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// initLogger sets the level of the standard logrus logger and, when file is
// set, tees the logs into a rotating JSON file.
func initLogger(level string, file string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	if file == "" {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		return nil
	}

	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    64, // MB
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}
	if lvl >= log.DebugLevel {
		w.MaxSize = 512
	}

	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(io.MultiWriter(os.Stderr, w))
	return nil
}
