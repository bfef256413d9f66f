package testutil

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// QuietLogs discards everything sent to the global logger. Call it from a
// package TestMain so loggers created afterwards stay silent.
func QuietLogs() {
	log.Logger = zerolog.Nop()
	zerolog.SetGlobalLevel(zerolog.Disabled)
}
