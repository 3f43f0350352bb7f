package migrations

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vector-console/internal/logger"
)

// gooseLogger sends goose progress lines to the console log file; goose
// would otherwise print them over the terminal UI.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Debug().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level only: Migrate reports failures as errors and
// the process must not exit underneath the UI.
func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
