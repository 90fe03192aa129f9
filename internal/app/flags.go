package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Sim     string
	Pattern string
	Width   int
	Height  int
	Density float64
	Scale   int
	TPS     int
	Seed    int64
	HUD     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 128, Height: 128, Density: 0.3, Scale: 4, TPS: 15, Seed: 42, HUD: 200}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, `pattern file to load, or "default" for the built-in 5x5 seed`)
	fs.IntVar(&c.Width, "w", c.Width, "grid width for random soups")
	fs.IntVar(&c.Height, "h", c.Height, "grid height for random soups")
	fs.Float64Var(&c.Density, "density", c.Density, "initial alive probability for random soups")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "stats panel width in pixels (0 hides it)")
}

// SimConfig converts the flags into the key/value map understood by sim
// factories.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
	if c.Pattern != "" {
		m["pattern"] = c.Pattern
	}
	return m
}
