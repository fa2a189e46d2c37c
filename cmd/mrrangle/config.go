package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type config struct {
	VerticalThreshold float64
	LogLevel          zerolog.Level
	LogFile           string
}

// loadConfig reads an optional .env file, and then the environment
func loadConfig() (*config, error) {
	// A missing .env is fine
	_ = godotenv.Load()
	return parseConfig(os.Getenv)
}

func parseConfig(getenv func(string) string) (*config, error) {
	cfg := &config{
		VerticalThreshold: 0.001,
		LogLevel:          zerolog.InfoLevel,
		LogFile:           getenv("MRR_LOG_FILE"),
	}
	if v := getenv("MRR_VERTICAL_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Wrap(err, "MRR_VERTICAL_THRESHOLD")
		}
		cfg.VerticalThreshold = f
	}
	if v := getenv("MRR_LOG_LEVEL"); v != "" {
		level, err := zerolog.ParseLevel(v)
		if err != nil {
			return nil, errors.Wrap(err, "MRR_LOG_LEVEL")
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}
