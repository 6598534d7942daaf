package typedlist

import (
	"github.com/rs/zerolog"
)

const (
	SOURCE_LOG_FIELD_NAME  = "src"
	VARIANT_LOG_FIELD_NAME = "variant"
	LOG_SOURCE             = "typedlist"
)

func childLoggerForRegistry(logger zerolog.Logger) zerolog.Logger {
	return logger.With().Str(SOURCE_LOG_FIELD_NAME, LOG_SOURCE).Logger()
}
