package config

import (
	"flag"
	"os"
	"time"

	"ticketapp/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path of the local storage database file
//	-d int      simulated storage delay in milliseconds
//	-r float    simulated storage failure rate (0..1)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-d", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoragePath, "f", cfg.StoragePath, "path of the local storage database file")
	delay := fs.Int("d", int(cfg.SimulatedDelay.Milliseconds()), "simulated storage delay (in milliseconds)")
	fs.Float64Var(&cfg.SimulatedFailRate, "r", cfg.SimulatedFailRate, "simulated storage failure rate (0..1)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SimulatedDelay = time.Duration(*delay) * time.Millisecond
}
