package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func init() {
	// loggers are usable before main calls InitLogger (tests, package init)
	InitLogger()
}

func InitLogger() {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	// InfoLogger -> stdout
	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// ErrorLogger -> stderr
	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	InfoLogger.SetLevel(logrus.InfoLevel)
	ErrorLogger.SetLevel(logrus.ErrorLevel)
}

// SetLevel adjusts the info logger, e.g. from LOG_LEVEL. Unknown levels are ignored.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		ErrorLogger.Printf("ignoring log level %q: %v", level, err)
		return
	}
	InfoLogger.SetLevel(lvl)
}
