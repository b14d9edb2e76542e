package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	APIPort  string
	LogLevel string

	MaxUploadBytes int64

	APIRateLimitRPS       float64
	APIRateLimitBurst     int
	APIMaxInFlight        int
	APIBackpressureWaitMS int

	MetricsEnabled bool

	ScoringConfigPath string
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		MaxUploadBytes: int64(mustEnvInt("MAX_UPLOAD_BYTES", 10<<20)),

		APIRateLimitRPS:       mustEnvFloat("API_RATE_LIMIT_RPS", 0),
		APIRateLimitBurst:     mustEnvInt("API_RATE_LIMIT_BURST", 10),
		APIMaxInFlight:        mustEnvInt("API_MAX_IN_FLIGHT", 0),
		APIBackpressureWaitMS: mustEnvInt("API_BACKPRESSURE_WAIT_MS", 250),

		MetricsEnabled: mustEnvBool("METRICS_ENABLED", true),

		ScoringConfigPath: mustEnv("SCORING_CONFIG_PATH", ""),
	}
}

// Scoring holds the ATS calibration knobs. A nil field was not set in the
// file and keeps the built-in default.
type Scoring struct {
	CalibrationBoost  *float64 `yaml:"calibration_boost"`
	FeedbackThreshold *float64 `yaml:"feedback_threshold"`
	PhraseMatching    *bool    `yaml:"phrase_matching"`
}

// LoadScoring reads the optional YAML tunables file. An empty path or a
// missing file yields the zero Scoring.
func LoadScoring(path string) (Scoring, error) {
	if path == "" {
		return Scoring{}, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Scoring{}, nil
	}
	if err != nil {
		return Scoring{}, fmt.Errorf("read scoring config: %w", err)
	}

	var out Scoring
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return Scoring{}, fmt.Errorf("parse scoring config %s: %w", path, err)
	}
	if v := out.CalibrationBoost; v != nil && !(*v > 0) {
		return Scoring{}, fmt.Errorf("calibration_boost must be positive, got %v", *v)
	}
	if v := out.FeedbackThreshold; v != nil && !(*v > 0 && *v <= 1) {
		return Scoring{}, fmt.Errorf("feedback_threshold must be within (0,1], got %v", *v)
	}
	return out, nil
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
