package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger: human-readable console output in
// development, JSON everywhere else.
func New(environment, level string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if environment == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	return zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
