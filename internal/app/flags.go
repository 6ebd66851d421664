package app

import "flag"

// Config represents the command-line parameters for the demo application.
type Config struct {
	Scene string
	Scale int
	Seed  int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scene: "", Scale: 2, Seed: 0}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "path to a YAML scene file (empty for the built-in demo)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "override the scene's gradient seed (0 keeps it)")
}
