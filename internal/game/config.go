package game

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/asciicast/asciicast/internal/gamedata"
)

// Output selects the front end.
type Output string

const (
	OutputAuto   Output = "auto"
	OutputStream Output = "stream"
	OutputTcell  Output = "tcell"
)

// GeneratedMapID selects a procedurally generated map instead of a catalogue entry.
const GeneratedMapID = "generated"

// Config holds game configuration options.
type Config struct {
	// Map is a catalogue ID, GeneratedMapID, or a path to a text map file.
	Map string
	// Seed for generated maps. A seed of 0 means a random seed will be generated.
	Seed int64
	// Width and Height are the frame dimensions in characters.
	Width, Height int
	// Workers is the number of concurrent column bands per frame.
	Workers int
	Output  Output
	// Telemetry enables the OTLP exporter.
	Telemetry bool
}

// DefaultConfig returns the reference 120x40 sample setup.
func DefaultConfig() Config {
	return Config{
		Map:     gamedata.DefaultMapID,
		Width:   120,
		Height:  40,
		Workers: 1,
		Output:  OutputAuto,
	}
}

// LoadConfig reads ASCIICAST_* variables through getenv, keeping defaults for unset ones.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv("ASCIICAST_MAP"); v != "" {
		cfg.Map = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"ASCIICAST_WIDTH", &cfg.Width},
		{"ASCIICAST_HEIGHT", &cfg.Height},
		{"ASCIICAST_WORKERS", &cfg.Workers},
	}
	for _, e := range ints {
		v := getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", e.key, err)
		}
		if n < 1 {
			return cfg, fmt.Errorf("%s must be at least 1, got %d", e.key, n)
		}
		*e.dst = n
	}

	if v := getenv("ASCIICAST_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse ASCIICAST_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if v := getenv("ASCIICAST_OUTPUT"); v != "" {
		switch out := Output(strings.ToLower(v)); out {
		case OutputAuto, OutputStream, OutputTcell:
			cfg.Output = out
		default:
			return cfg, fmt.Errorf("unknown ASCIICAST_OUTPUT %q", v)
		}
	}

	if v := getenv("ASCIICAST_TELEMETRY"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("parse ASCIICAST_TELEMETRY: %w", err)
		}
		cfg.Telemetry = on
	}

	return cfg, nil
}

// ResolveOutput turns OutputAuto into tcell when both descriptors are terminals.
func (c Config) ResolveOutput(stdinFd, stdoutFd int) Output {
	if c.Output != OutputAuto {
		return c.Output
	}
	if term.IsTerminal(stdinFd) && term.IsTerminal(stdoutFd) {
		return OutputTcell
	}
	return OutputStream
}
