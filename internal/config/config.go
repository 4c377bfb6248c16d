package config

import (
	"os"
	"strings"
)

const (
	defaultPort    = "8000"
	defaultBackend = "openai"
)

// Config is built once in main and only read afterwards.
type Config struct {
	Port      string
	Token     string // upstream bearer credential, may be empty
	Backend   string // openai | genkit
	Preflight bool
}

// Load reads the process environment. Missing values fall back to defaults,
// a missing token stays empty and surfaces later as an upstream auth error.
func Load() Config {
	return Config{
		Port:      getenvOr("PORT", defaultPort),
		Token:     os.Getenv("GIT_HUB_TOKEN"),
		Backend:   strings.ToLower(getenvOr("LLM_BACKEND", defaultBackend)),
		Preflight: isTrue(os.Getenv("LLM_PREFLIGHT")),
	}
}

// Addr is the listen address for http.ListenAndServe.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getenvOr(key, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}

func isTrue(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
