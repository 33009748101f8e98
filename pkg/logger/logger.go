package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Call Init once from main.
var Log *logrus.Logger = newDefault()

// Init configures Log from the environment.
// LOG_LEVEL selects the level (default "info"), LOG_FORMAT=json switches to JSON output.
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput is Init with an explicit destination. The terminal viewer
// uses it to keep log lines off the screen.
func InitWithOutput(w io.Writer) {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   w == os.Stdout,
		})
	}

	Log.SetOutput(w)
}

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}
