package config

import (
	"encoding/json"
	"os"
	"time"

	"ticketapp/internal/flagx"
	"ticketapp/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the delay either as a string like
// "250ms" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config.
type JsonConfig struct {
	StoragePath       string         `json:"storage_path"`
	SimulatedDelay    timex.Duration `json:"simulated_delay"`
	SimulatedFailRate float64        `json:"simulated_fail_rate"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. When no file is given, nothing happens. Read or
// unmarshal errors panic; there is no sane way to continue with a config the
// user explicitly pointed at but which cannot be understood.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.StoragePath = jc.StoragePath
	cfg.SimulatedDelay = time.Duration(jc.SimulatedDelay.Duration)
	cfg.SimulatedFailRate = jc.SimulatedFailRate
}
