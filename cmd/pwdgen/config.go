package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type serveConfig struct {
	Addr  string
	Rate  float64
	Burst int
}

// loadServeConfig reads PWDGEN_* variables, after an optional .env file.
func loadServeConfig(logger *slog.Logger) serveConfig {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using environment variables")
	}
	return serveConfig{
		Addr:  getEnv("PWDGEN_ADDR", ":8080"),
		Rate:  getEnvFloat(logger, "PWDGEN_RATE", 5),
		Burst: getEnvInt(logger, "PWDGEN_BURST", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(logger *slog.Logger, key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		logger.Warn("invalid env value, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getEnvInt(logger *slog.Logger, key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		logger.Warn("invalid env value, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
