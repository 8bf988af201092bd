package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/ezBadminton/goqualifier/core"
	"github.com/joho/godotenv"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

var ErrInvalidValue = errors.New("invalid configuration value")

type Config struct {
	// Scenario
	ScenarioPath string

	// Simulation
	Iterations int
	Workers    int
	Seed       int64
	TieBreak   core.TieBreak

	// Output
	Output         string
	MetricsFile    string // Prometheus textfile, skipped when empty
	ReferenceTable bool   // Append the match model's reference table

	// Telemetry
	Env      string
	LogLevel string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load loads configuration from a .env file when present and
// the environment variables. Malformed values are errors.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Output:         strings.ToLower(getEnv("FORECAST_OUTPUT", OutputTable)),
		MetricsFile:    getEnv("FORECAST_METRICS_FILE", ""),
		ReferenceTable: getEnv("FORECAST_REFERENCE_TABLE", "false") == "true",

		Env:      getEnv("FORECAST_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.ScenarioPath, err = getEnvRequired("FORECAST_SCENARIO"); err != nil {
		return nil, err
	}
	if cfg.Iterations, err = getEnvInt("FORECAST_ITERATIONS", 50000); err != nil {
		return nil, err
	}
	if cfg.Workers, err = getEnvInt("FORECAST_WORKERS", runtime.GOMAXPROCS(0)); err != nil {
		return nil, err
	}
	if cfg.Seed, err = getEnvInt64("FORECAST_SEED", time.Now().UnixNano()); err != nil {
		return nil, err
	}
	if cfg.TieBreak, err = parseTieBreak(getEnv("FORECAST_TIE_BREAK", "entry")); err != nil {
		return nil, err
	}

	if cfg.Iterations < 1 {
		return nil, fmt.Errorf("%w: FORECAST_ITERATIONS must be positive", ErrInvalidValue)
	}
	if cfg.Output != OutputTable && cfg.Output != OutputJSON {
		return nil, fmt.Errorf("%w: FORECAST_OUTPUT must be %q or %q", ErrInvalidValue, OutputTable, OutputJSON)
	}

	return cfg, nil
}

func parseTieBreak(value string) (core.TieBreak, error) {
	switch strings.ToLower(value) {
	case "entry":
		return core.TieBreakEntryOrder, nil
	case "random":
		return core.TieBreakRandom, nil
	}
	return 0, fmt.Errorf("%w: unknown tie-break %q", ErrInvalidValue, value)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, key, value)
	}
	return i, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, key, value)
	}
	return i, nil
}
