package app

import (
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"

	"lifeloop/pkg/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Height         int     `json:"height"`
	Width          int     `json:"width"`
	Scale          int     `json:"scale"`
	TPS            int     `json:"tps"`
	Seed           int64   `json:"seed"`
	Density        float64 `json:"density"`
	MaxGenerations int     `json:"max_generations"`
	Headless       bool    `json:"headless"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Height: 200, Width: 200, Scale: 3, TPS: 30, Seed: 42, Density: 0.5}
}

// Size returns the configured grid dimensions.
func (c *Config) Size() core.Size {
	return core.Size{Height: c.Height, Width: c.Width}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a cell starts alive")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 runs until interrupted)")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "render to the terminal instead of a window")
}

// LoadConfig reads a JSON config file on top of c. Fields missing from the
// file keep their current values.
func (c *Config) LoadConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Height <= 0 || c.Width <= 0:
		return errors.Errorf("grid size must be positive, got %dx%d", c.Height, c.Width)
	case c.Scale <= 0:
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density must be within [0,1], got %v", c.Density)
	case c.MaxGenerations < 0:
		return errors.Errorf("generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}

// Parse builds a Config from command-line arguments. A -config file, when
// given, is applied before the remaining flags so explicit flags win. -help
// prints usage and returns an error matching flag.ErrHelp.
func Parse(name string, args []string) (*Config, error) {
	var path string
	pre := flag.NewFlagSet(name, flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	pre.StringVar(&path, "config", "", "")
	NewConfig().Bind(pre)
	// Only -config matters here; the full parse below reports any errors.
	_ = pre.Parse(args)

	cfg := NewConfig()
	if path != "" {
		if err := cfg.LoadConfig(path); err != nil {
			return nil, err
		}
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", path, "JSON file with default settings")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
