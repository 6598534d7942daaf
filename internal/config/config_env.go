package config

import (
	"os"

	"github.com/muesli/termenv"
)

func targetSpecificInit() {
	// FORCE COLOR

	if s, ok := os.LookupEnv("FORCE_COLOR"); ok {
		FORCE_COLOR = isTruthy(s)
	}

	//NO_COLOR

	if s, ok := os.LookupEnv("NO_COLOR"); ok {
		NO_COLOR = isTruthy(s)
	}

	//

	SHOULD_COLORIZE = !NO_COLOR && (FORCE_COLOR || termenv.EnvColorProfile() != termenv.Ascii)
}

func isTruthy(s string) bool {
	return len(s) != 0 && s != "false" && s != "0"
}
