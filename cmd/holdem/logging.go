package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// parseLevel maps a --log-level flag to a zerolog level, defaulting to info.
func parseLevel(name string) zerolog.Level {
	switch name {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// setupLogger writes pretty console output, or JSON when structured is set.
func setupLogger(out io.Writer, level string, structured bool) zerolog.Logger {
	if structured {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	} else {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func stderrLogger(level string, structured bool) zerolog.Logger {
	return setupLogger(os.Stderr, level, structured)
}
