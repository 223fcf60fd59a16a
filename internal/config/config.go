package config

import "time"

// Config holds runtime settings for the ticketapp CLI.
//
// Fields:
//   - StoragePath: path of the local storage database file.
//   - SimulatedDelay: artificial latency added to every storage operation.
//   - SimulatedFailRate: probability in [0,1] that a storage operation fails.
//
// The simulation settings exist for demonstrating slow/flaky persistence;
// both default to off.
type Config struct {
	StoragePath       string
	SimulatedDelay    time.Duration
	SimulatedFailRate float64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoragePath = "ticketapp.db"
	c.SimulatedDelay = 0
	c.SimulatedFailRate = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
