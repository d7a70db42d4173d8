package app

import "flag"

// Config represents the command-line parameters for the application. Width
// and Height of zero mean "size to the terminal".
type Config struct {
	Backend string
	CPU     bool
	Height  int
	Width   int
	Seed    int64
	Fill    float64
	TPS     int
	Scale   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Backend: "parallel", Seed: 42, Fill: 0.5, Scale: 3}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "transition engine backend")
	fs.BoolVar(&c.CPU, "cpu", c.CPU, "shorthand for -backend sequential")
	fs.IntVar(&c.Height, "height", c.Height, "grid height (0 = fit terminal)")
	fs.IntVar(&c.Width, "width", c.Width, "grid width (0 = fit terminal)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial random fill")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "live probability of the initial fill")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second (0 = unpaced)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI build)")
}

// EngineName resolves the backend selection, honoring the -cpu shorthand.
func (c *Config) EngineName() string {
	if c.CPU {
		return "sequential"
	}
	return c.Backend
}
