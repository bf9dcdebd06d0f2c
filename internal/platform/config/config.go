package config

import (
	"os"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration
	LogLevel        string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("HOLDINGS_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	shutdownTimeout := durationFromEnv("HOLDINGS_SHUTDOWN_TIMEOUT", 10*time.Second)
	requestTimeout := durationFromEnv("HOLDINGS_REQUEST_TIMEOUT", 30*time.Second)

	logLevel := os.Getenv("HOLDINGS_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return Server{
		Addr:            addr,
		ShutdownTimeout: shutdownTimeout,
		RequestTimeout:  requestTimeout,
		LogLevel:        logLevel,
	}
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
