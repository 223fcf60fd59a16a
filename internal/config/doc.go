// Package config loads runtime configuration for the ticketapp CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string   path of the local storage database file
//	-d int      simulated storage delay (milliseconds)
//	-r float    simulated storage failure rate (0..1)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the delay, so values can be either
// strings like "250ms" or integer nanoseconds:
//
//	{
//	  "storage_path": "ticketapp.db",
//	  "simulated_delay": "250ms",
//	  "simulated_fail_rate": 0.1
//	}
//
// Note: this package does not read environment variables; use the JSON file
// or flags to configure values.
package config
