package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.SetOutput(os.Stdout)
	Logger.SetFormatter(&logrus.JSONFormatter{}) // Use JSON format for structured logs
	Logger.SetLevel(logrus.InfoLevel)            // Set the default log level
}

// Setup points the logger at logFile (stdout when empty) and applies level.
// The returned closer releases the file, if one was opened.
func Setup(logFile, level string) (io.Closer, error) {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		Logger.SetLevel(lvl)
	}

	if logFile == "" {
		Logger.SetOutput(os.Stdout)
		return io.NopCloser(nil), nil
	}

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, err
	}
	Logger.SetOutput(file)
	return file, nil
}

// LogEvent logs structured events
func LogEvent(level logrus.Level, message string, fields logrus.Fields) {
	Logger.WithFields(fields).Log(level, message)
}
