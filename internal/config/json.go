package config

import (
	"encoding/json"
	"os"

	"github.com/svilenkov/healthconnect/internal/flagx"
	"github.com/svilenkov/healthconnect/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the bootstrap delay either as a string
// like "500ms" or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN     string         `json:"database_dsn"`
	BootstrapDelay  timex.Duration `json:"bootstrap_delay"`
	PlatformOS      string         `json:"platform_os"`
	DeviceLatitude  float64        `json:"device_latitude"`
	DeviceLongitude float64        `json:"device_longitude"`
	DeviceCity      string         `json:"device_city"`
	DeviceRegion    string         `json:"device_region"`
	DeviceCountry   string         `json:"device_country"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Only fields present in the file (non-zero after unmarshal) are copied.
// Panics on read or unmarshal errors.
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

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.BootstrapDelay.Duration != 0 {
		cfg.BootstrapDelay = jc.BootstrapDelay.Duration
	}
	if jc.PlatformOS != "" {
		cfg.PlatformOS = jc.PlatformOS
	}
	if jc.DeviceLatitude != 0 {
		cfg.DeviceLatitude = jc.DeviceLatitude
	}
	if jc.DeviceLongitude != 0 {
		cfg.DeviceLongitude = jc.DeviceLongitude
	}
	if jc.DeviceCity != "" {
		cfg.DeviceCity = jc.DeviceCity
	}
	if jc.DeviceRegion != "" {
		cfg.DeviceRegion = jc.DeviceRegion
	}
	if jc.DeviceCountry != "" {
		cfg.DeviceCountry = jc.DeviceCountry
	}
}
