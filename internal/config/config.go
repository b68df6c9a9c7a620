package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Default provider endpoints. The fallback must use the same zoom level as
// the interactive view so the two renditions stay visually consistent.
const (
	DefaultMapsBaseURL       = "https://maps.google.com/maps"
	DefaultStaticMapsBaseURL = "https://maps.googleapis.com/maps/api/staticmap"
)

// Config holds all application configuration.
type Config struct {
	Addr              string
	MapsBaseURL       string
	StaticMapsBaseURL string
	DBPath            string
	ProbeTimeout      time.Duration
	RetryLimit        int // manual retries allowed per client per minute
	Debug             bool
}

// Load parses command line flags and environment variables to populate Config.
// Flags take precedence over environment variables.
func Load() *Config {
	cfg := &Config{}

	// Defaults and Environment Variables
	cfg.Addr = getEnv("PREVIEWD_ADDR", ":8080")
	cfg.MapsBaseURL = getEnv("PREVIEWD_MAPS_URL", DefaultMapsBaseURL)
	cfg.StaticMapsBaseURL = getEnv("PREVIEWD_STATIC_MAPS_URL", DefaultStaticMapsBaseURL)
	cfg.DBPath = getEnv("PREVIEWD_DB", getDefaultDBPath())
	probeTimeoutMS := getEnvInt("PREVIEWD_PROBE_TIMEOUT_MS", 15000)
	cfg.RetryLimit = getEnvInt("PREVIEWD_RETRY_LIMIT", 10)
	cfg.Debug = getEnvBool("PREVIEWD_DEBUG", false)

	// Command Line Flags (Override Env)
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP server address")
	flag.StringVar(&cfg.MapsBaseURL, "maps-url", cfg.MapsBaseURL, "Interactive map provider base URL")
	flag.StringVar(&cfg.StaticMapsBaseURL, "static-maps-url", cfg.StaticMapsBaseURL, "Static map provider base URL")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database")
	flag.IntVar(&probeTimeoutMS, "probe-timeout", probeTimeoutMS, "Provider probe timeout in milliseconds")
	flag.IntVar(&cfg.RetryLimit, "retry-limit", cfg.RetryLimit, "Manual retries allowed per client per minute")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable verbose debug logging")

	flag.Parse()

	cfg.ProbeTimeout = time.Duration(probeTimeoutMS) * time.Millisecond

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getDefaultDBPath returns the default database path in user's home directory.
// Creates the directory if it doesn't exist.
func getDefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: Could not get user home directory, using current dir: %v", err)
		return "previewd.db"
	}

	dir := filepath.Join(home, ".previewd")

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Warning: Could not create .previewd directory, using current dir: %v", err)
		return "previewd.db"
	}

	return filepath.Join(dir, "previewd.db")
}
