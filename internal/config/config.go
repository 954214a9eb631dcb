// Package config handles runtime configuration: defaults, environment
// variables, an optional JSON file, and command-line flags, applied in that
// order with later sources taking precedence.
package config

import (
	"runtime"
	"time"
)

// Config holds runtime settings for the HealthConnect CLI.
//
// Fields:
//   - DatabaseDSN: path of the local sqlite database file.
//   - BootstrapDelay: pause between the two first-login permission prompts.
//   - PlatformOS: os identifier reported by the platform layer; the android
//     value enables notification channel setup.
//   - DeviceLatitude/DeviceLongitude and DeviceCity/DeviceRegion/DeviceCountry:
//     position and place reported by the local platform stand-in.
type Config struct {
	DatabaseDSN     string        `env:"HC_DATABASE_DSN"`
	BootstrapDelay  time.Duration `env:"HC_BOOTSTRAP_DELAY"`
	PlatformOS      string        `env:"HC_PLATFORM_OS"`
	DeviceLatitude  float64       `env:"HC_DEVICE_LATITUDE"`
	DeviceLongitude float64       `env:"HC_DEVICE_LONGITUDE"`
	DeviceCity      string        `env:"HC_DEVICE_CITY"`
	DeviceRegion    string        `env:"HC_DEVICE_REGION"`
	DeviceCountry   string        `env:"HC_DEVICE_COUNTRY"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "healthconnect.db"
	c.BootstrapDelay = 500 * time.Millisecond
	c.PlatformOS = runtime.GOOS
	c.DeviceLatitude = 40.7128
	c.DeviceLongitude = -74.0060
	c.DeviceCity = "New York"
	c.DeviceRegion = "NY"
	c.DeviceCountry = "USA"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if provided), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
