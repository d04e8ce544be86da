// Package config provides functionality for loading and accessing environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	log  = logrus.New()
)

// LoadEnv loads environment variables from a .env file if one exists in
// the current or parent directory. Repeated calls are no-ops.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			workDir, err := os.Getwd()
			if err != nil {
				return
			}
			envFile = filepath.Join(filepath.Dir(workDir), ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			log.Warnf("Error loading .env file: %v", err)
		} else {
			log.Debugf("Environment variables loaded from %s", envFile)
		}
	})
}

// ConfigureLogging creates a logger configured from the LOG_LEVEL and
// LOG_FORMAT environment variables, falling back to info/text.
func ConfigureLogging() *logrus.Logger {
	logger := logrus.New()

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
