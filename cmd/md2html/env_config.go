package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// envConfig holds settings read from MD2HTML_* environment variables.
// Precedence: CLI flags > env vars > config file > defaults.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG: config file name or path
	Workers    int    // MD2HTML_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2HTML_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":  true,
	"MD2HTML_WORKERS": true,
}

// loadEnvConfig reads the recognized MD2HTML_* variables. Invalid or
// non-positive worker counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2HTML_CONFIG"),
	}

	if workers := os.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "MD2HTML_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyTo fills flags the user left unset.
func (e *envConfig) applyTo(common *commonFlags, workers *int) {
	if e.ConfigPath != "" && common.config == "" {
		common.config = e.ConfigPath
	}
	if e.Workers > 0 && *workers == 0 {
		*workers = e.Workers
	}
}
