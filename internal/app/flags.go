package app

import (
	"flag"
	"strings"
)

// KVList collects repeatable key=value flag values.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value entry.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters for the viewer.
type Config struct {
	Source     string
	Scale      int
	TPS        int
	SimTPS     int
	Seed       int64
	HUDWidth   int
	ConfigFile string
	Set        KVList
}

// NewConfig returns a Config populated with sensible defaults. Seed 0 keeps
// whatever seed the source's own configuration carries.
func NewConfig() *Config {
	return &Config{Source: "worldmap", Scale: 4, TPS: 60, SimTPS: 10, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Source, "source", c.Source, "world source to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "render ticks per second")
	fs.IntVar(&c.SimTPS, "sim-tps", c.SimTPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed (0 uses the source default)")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional configuration file")
	fs.Var(&c.Set, "set", "source parameter override in key=value form (repeatable)")
}
