package main

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadnet/config"
)

// newLogger builds the run logger from the logging section of c.
// Unknown levels fall back to info; config validation normally rules them out.
func newLogger(c config.Config, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if c.Logging.Pretty {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
