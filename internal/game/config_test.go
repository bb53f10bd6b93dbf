package game

import (
	"testing"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(envFrom(nil))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if cfg.Width != 120 || cfg.Height != 40 || cfg.Map != "sample" {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(envFrom(map[string]string{
		"ASCIICAST_MAP":       "generated",
		"ASCIICAST_SEED":      "99",
		"ASCIICAST_WIDTH":     "80",
		"ASCIICAST_HEIGHT":    "24",
		"ASCIICAST_WORKERS":   "4",
		"ASCIICAST_OUTPUT":    "Stream",
		"ASCIICAST_TELEMETRY": "true",
	}))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := Config{
		Map:       "generated",
		Seed:      99,
		Width:     80,
		Height:    24,
		Workers:   4,
		Output:    OutputStream,
		Telemetry: true,
	}
	if cfg != want {
		t.Errorf("Got %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []map[string]string{
		{"ASCIICAST_WIDTH": "wide"},
		{"ASCIICAST_HEIGHT": "0"},
		{"ASCIICAST_WORKERS": "-2"},
		{"ASCIICAST_SEED": "1.5"},
		{"ASCIICAST_OUTPUT": "gui"},
		{"ASCIICAST_TELEMETRY": "maybe"},
	}

	for _, env := range tests {
		if _, err := LoadConfig(envFrom(env)); err == nil {
			t.Errorf("Expected error for %v", env)
		}
	}
}

func TestResolveOutputExplicit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = OutputStream
	if got := cfg.ResolveOutput(-1, -1); got != OutputStream {
		t.Errorf("Got %v, want stream", got)
	}

	cfg.Output = OutputAuto
	if got := cfg.ResolveOutput(-1, -1); got != OutputStream {
		t.Errorf("Invalid descriptors should fall back to stream, got %v", got)
	}
}
