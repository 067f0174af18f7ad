package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// config is a run of the machine. It can be read from a TOML file, and
// any flag given on the command line replaces the file value.
type config struct {
	Program  string        `toml:"program"`   // Rule file.
	Input    string        `toml:"input"`     // Input file, '-' for stdin.
	Start    string        `toml:"start"`     // Initial state override.
	Encoding string        `toml:"encoding"`  // "raw" or "ordinal".
	MaxSteps int           `toml:"max_steps"` // Cycle ceiling, 0 for none.
	Delay    time.Duration `toml:"delay"`     // Pause after each displayed cycle.
	Show     bool          `toml:"show"`      // Display the tapes every cycle.
	Trace    string        `toml:"trace"`     // JSON trace file.
	Verbose  bool          `toml:"verbose"`   // Verbose logging.
}

func defaultConfig() config {
	return config{
		Input:    "-",
		Encoding: "raw",
	}
}

// loadConfig reads a TOML run configuration over the defaults.
func loadConfig(path string) (cfg config, err error) {
	cfg = defaultConfig()

	_, err = toml.DecodeFile(path, &cfg)
	if err != nil {
		err = fmt.Errorf("load config: %w", err)
	}

	return
}

// mergeConfig takes the values of the named flags from flags, and every
// other value from file.
func mergeConfig(file config, flags config, set map[string]bool) (cfg config) {
	cfg = file

	for name, ok := range set {
		if !ok {
			continue
		}
		switch name {
		case "p":
			cfg.Program = flags.Program
		case "i":
			cfg.Input = flags.Input
		case "start":
			cfg.Start = flags.Start
		case "ordinal":
			cfg.Encoding = flags.Encoding
		case "max":
			cfg.MaxSteps = flags.MaxSteps
		case "delay":
			cfg.Delay = flags.Delay
		case "show":
			cfg.Show = flags.Show
		case "trace":
			cfg.Trace = flags.Trace
		case "v":
			cfg.Verbose = flags.Verbose
		}
	}

	return
}
