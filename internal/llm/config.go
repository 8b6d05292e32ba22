package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the generation subsystem.
type Config struct {
	APIKey     string
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// Enabled reports whether an API key is configured. Without one every
// assistant feature falls back to deterministic output.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}

// DefaultConfig returns a Config with sensible defaults and no API key.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-2.0-flash",
		TimeoutMs:  15000,
		MaxRetries: 1,
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("STUDYDESK_AI_API_KEY")
	if v := os.Getenv("STUDYDESK_AI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("STUDYDESK_AI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("STUDYDESK_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("STUDYDESK_AI_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("STUDYDESK_AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
