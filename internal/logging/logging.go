package logging

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/config"
)

// New builds the application logger from config. When a log file is
// configured it is opened in append mode; otherwise logs go to stdout.
func New(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetOutput(os.Stdout)
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.WithError(err).Warn("failed to open log file, using stdout")
		} else {
			logger.SetOutput(file)
		}
	}

	return logger
}
