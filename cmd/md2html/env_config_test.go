package main

// Notes:
// - These tests use t.Setenv, so they cannot run in parallel.

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoadEnvConfig(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		workers     string
		wantConfig  string
		wantWorkers int
	}{
		{"unset", "", "", "", 0},
		{"both set", "site", "4", "site", 4},
		{"invalid workers ignored", "", "four", "", 0},
		{"non-positive workers ignored", "", "-2", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MD2HTML_CONFIG", tt.config)
			t.Setenv("MD2HTML_WORKERS", tt.workers)

			got := loadEnvConfig()
			if got.ConfigPath != tt.wantConfig {
				t.Errorf("ConfigPath = %q, want %q", got.ConfigPath, tt.wantConfig)
			}
			if got.Workers != tt.wantWorkers {
				t.Errorf("Workers = %d, want %d", got.Workers, tt.wantWorkers)
			}
		})
	}
}

func TestEnvConfig_ApplyTo(t *testing.T) {
	env := &envConfig{ConfigPath: "env.yaml", Workers: 6}

	t.Run("fills unset flags", func(t *testing.T) {
		common := commonFlags{}
		workers := 0
		env.applyTo(&common, &workers)
		if common.config != "env.yaml" || workers != 6 {
			t.Errorf("got config %q workers %d, want env.yaml 6", common.config, workers)
		}
	})

	t.Run("flags win", func(t *testing.T) {
		common := commonFlags{config: "flag.yaml"}
		workers := 2
		env.applyTo(&common, &workers)
		if common.config != "flag.yaml" || workers != 2 {
			t.Errorf("got config %q workers %d, want flag.yaml 2", common.config, workers)
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("MD2HTML_WORKERS", "2")
	t.Setenv("MD2HTML_WORKER", "2")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	if !strings.Contains(buf.String(), "MD2HTML_WORKER ") {
		t.Errorf("output = %q, want a warning for MD2HTML_WORKER", buf.String())
	}
	if strings.Contains(buf.String(), "MD2HTML_WORKERS") {
		t.Errorf("output = %q, want no warning for MD2HTML_WORKERS", buf.String())
	}
}

func TestRun_EnvWorkersRejectedByConfig(t *testing.T) {
	t.Setenv("MD2HTML_WORKERS", "1000")

	env, _, stderr := testEnv()
	dir := t.TempDir()
	writeFile(t, dir+"/a.md", "# A")

	if got := run([]string{"convert", dir + "/a.md"}, env); got != ExitUsage {
		t.Errorf("run() = %d, want %d (stderr: %s)", got, ExitUsage, stderr)
	}
}
