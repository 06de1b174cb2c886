package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Host    string
	Port    int
	Env     string
	DBPath  string
	WebRoot string
}

func Load() Config {
	cfg := Config{
		Host:    getEnv("HOST", "0.0.0.0"),
		Env:     getEnv("ENV", "development"),
		DBPath:  getEnv("DB_PATH", "health_tracker.db"),
		WebRoot: getEnv("WEB_ROOT", "web"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8000"))
	if err != nil {
		slog.Error("PORT must be an integer", "value", os.Getenv("PORT"))
		os.Exit(1)
	}
	cfg.Port = port

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
