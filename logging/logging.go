package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/status-im/crypto-insight/config"
)

// Configure applies the log section of the configuration to the standard
// logger, which every component derives its entry from
func Configure(cfg config.LogConfig) error {
	return apply(logrus.StandardLogger(), cfg, os.Stdout)
}

func apply(logger *logrus.Logger, cfg config.LogConfig, out io.Writer) error {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var formatter logrus.Formatter
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	case "json":
		formatter = &logrus.JSONFormatter{}
	default:
		return fmt.Errorf("invalid log format %q", cfg.Format)
	}

	logger.SetOutput(out)
	logger.SetLevel(parsed)
	logger.SetFormatter(formatter)
	return nil
}

// Component returns an entry tagged with the component name
func Component(logger logrus.FieldLogger, name string) *logrus.Entry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return logger.WithField("component", name)
}
