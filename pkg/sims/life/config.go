package life

import "strconv"

// PatternDefault selects the built-in 5x5 seed instead of a pattern file.
const PatternDefault = "default"

// Config controls how a Life simulation is initialised.
type Config struct {
	Width  int
	Height int

	// Density is the probability that a cell starts alive in a random soup.
	Density float64
	Seed    int64

	// Pattern is a pattern file path or PatternDefault. When set, Width,
	// Height and Density are ignored.
	Pattern string
}

// DefaultConfig returns the standard configuration: a random soup.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Density: 0.3, Seed: 42}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	return c
}

// Map converts the config back into the string map accepted by FromMap.
func (c Config) Map() map[string]string {
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
