package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// L is the process-wide logger. Init replaces it once at startup; it is
// read-only afterwards.
var L = logrus.New()

func Init() error {
	level := logrus.InfoLevel

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		parsed, err := logrus.ParseLevel(raw)
		if err != nil {
			return err
		}
		level = parsed
	}

	L.SetLevel(level)

	switch os.Getenv("LOG_FORMAT") {
	case "json":
		L.SetFormatter(&logrus.JSONFormatter{})
	default:
		L.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var output io.Writer = os.Stdout

	if path := os.Getenv("LOG_FILE"); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}

		output = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
	}

	L.SetOutput(output)

	return nil
}
