package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the CLI commands and the API server
type Config struct {
	LogLevel  string
	LogFormat string

	// Defaults for calculations
	Overhang  bool
	OutputDir string

	// HTTP server
	Addr         string
	RateLimit    float64 // requests per second per client
	RateBurst    int
	ReportAuthor string
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		LogLevel:  "INFO",
		LogFormat: "text",
		OutputDir: ".",
		Addr:      ":8080",
		RateLimit: 5,
		RateBurst: 10,
	}
}

// Load reads an optional .env file and applies GOHOUSE_* environment
// variables on top of the defaults. A missing env file is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("GOHOUSE_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("GOHOUSE_ADDR"); v != "" {
		cfg.Addr = v
	}
	cfg.ReportAuthor = os.Getenv("GOHOUSE_REPORT_AUTHOR")

	var err error
	if cfg.Overhang, err = envBool("GOHOUSE_OVERHANG", cfg.Overhang); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit, err = envFloat("GOHOUSE_RATE_LIMIT", cfg.RateLimit); err != nil {
		return Config{}, err
	}
	if cfg.RateBurst, err = envInt("GOHOUSE_RATE_BURST", cfg.RateBurst); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit <= 0 || cfg.RateBurst <= 0 {
		return Config{}, fmt.Errorf("rate limit and burst must be positive, got %.2f/%d", cfg.RateLimit, cfg.RateBurst)
	}

	return cfg, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
