// Package log configures the process-wide apex logger.
package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// Init sets up apex with a terse handler and a log level from the
// PWPOLICY_LOG env variable. The default level is error so progress
// messages stay out of the way unless asked for.
func Init() {
	envLevel := strings.ToLower(os.Getenv("PWPOLICY_LOG"))
	if envLevel == "" {
		envLevel = "error"
	}

	var apexLevel log.Level
	switch envLevel {
	case "debug":
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn":
		apexLevel = log.WarnLevel
	case "error":
		apexLevel = log.ErrorLevel
	case "fatal":
		apexLevel = log.FatalLevel
	default:
		apexLevel = log.ErrorLevel
	}

	log.SetHandler(&Handler{})
	log.SetLevel(apexLevel)
}

// Handler formats log messages and writes them to stderr, keeping stdout
// free for the report itself.
type Handler struct{}

// HandleLog implements the log.Handler interface.
func (h *Handler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	if len(level) > 1 {
		level = level[:1]
	}
	_, err := fmt.Fprintf(os.Stderr, "%s %s %s\n", timestamp, level, e.Message)
	return err
}
