package main

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/weighttest"
)

// DefaultRepeat is the number of sample triples per weight type.
const DefaultRepeat = 10000

var errBadConfig = errors.New("bad config")

// Config is the run configuration. A YAML file supplies it and flags
// override single fields.
type Config struct {
	Seed      int64    `yaml:"seed"`
	Repeat    int      `yaml:"repeat"`
	Delta     float64  `yaml:"delta"`
	Verbosity int      `yaml:"verbosity"`
	Mode      string   `yaml:"mode"`
	Weights   []string `yaml:"weights"`
	Parallel  int      `yaml:"parallel"`
}

func defaultConfig() Config {
	return Config{
		Repeat:  DefaultRepeat,
		Delta:   semiring.Delta,
		Mode:    weighttest.ModeFailFast.String(),
		Weights: slices.Clone(weightNames),
	}
}

// loadConfig reads path over the defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w: %v", path, errBadConfig, err)
	}

	return cfg, nil
}

// validate checks the values and resolves the mode.
func (c Config) validate() (weighttest.Mode, error) {
	mode, err := weighttest.ParseMode(c.Mode)
	if err != nil {
		return 0, fmt.Errorf("%w: mode: %v", errBadConfig, err)
	}
	switch {
	case c.Repeat < 0:
		return 0, fmt.Errorf("%w: repeat %d must be >= 0", errBadConfig, c.Repeat)
	case math.IsNaN(c.Delta) || math.IsInf(c.Delta, 0) || c.Delta < 0:
		return 0, fmt.Errorf("%w: delta %v must be finite and >= 0", errBadConfig, c.Delta)
	case c.Verbosity < 0:
		return 0, fmt.Errorf("%w: verbosity %d must be >= 0", errBadConfig, c.Verbosity)
	case len(c.Weights) == 0:
		return 0, fmt.Errorf("%w: no weight types selected", errBadConfig)
	}
	for _, name := range c.Weights {
		if _, ok := factories[name]; !ok {
			return 0, fmt.Errorf("%w: unknown weight type %q", errBadConfig, name)
		}
	}

	return mode, nil
}
