package testlog

import (
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/neko3da4/CHRFORGE/internal/logging"
)

// Start switches the global logger to the test profile and stamps the
// test name so interleaved output stays attributable.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Info().Str("test", t.Name()).Msg("test start")
}
