package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a config duration string, falling back to the given
// default when the value is empty or malformed. Config values are read before
// the application logger is configured, so this uses the zerolog global.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("value", durationStr).Dur("fallback", defaultDuration).Msg("Invalid duration string, using fallback")
		return defaultDuration
	}
	return duration
}
