package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a logger writing to w. Format "json" emits one JSON object per
// line, anything else uses the human readable console writer.
//
// The level parameter can be one of: trace, debug, info, warn, error, fatal.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}

	if format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl), nil
}

// Setup builds a stdout logger and installs it as the global zerolog logger.
// An unknown level falls back to info.
func Setup(level, format string) zerolog.Logger {
	l, err := New(os.Stdout, level, format)
	if err != nil {
		l, _ = New(os.Stdout, "info", format)
		l.Warn().Str("level", level).Msg("unknown log level, using info")
	}

	log.Logger = l
	return l
}
