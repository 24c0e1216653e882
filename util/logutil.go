package util

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// InitLogrus configures the package-level logrus logger from the
// LOG_LEVEL environment variable. Supported levels: debug, info,
// warn, error.
func InitLogrus() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return
	}

	level, err := logrus.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
}
