package main

import (
	"fmt"
	"io"
	"time"

	"github.com/inoxlang/typedlist/internal/config"
	"github.com/rs/zerolog"
)

func init() {
	zerolog.MessageFieldName = "msg"
	zerolog.LevelFieldName = "lvl"
	zerolog.TimestampFieldName = "tm"
}

func newLogger(errW io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %w", err)
	}

	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = errW
		w.NoColor = !config.SHOULD_COLORIZE
		w.TimeFormat = time.TimeOnly
	}))

	return logger.Level(lvl).With().Timestamp().Logger(), nil
}
