package config

import (
	"time"

	"github.com/dmitrijs2005/lifetrack/internal/cryptox"
)

// Config holds runtime settings for the LifeTrack CLI.
//
// Fields:
//   - DatabasePath: location of the local SQLite file.
//   - KDFIterations: PBKDF2 iteration count for key derivation.
//   - SessionTTL: how long an unlocked session stays valid; 0 means no expiry.
//
// Units: SessionTTL is a time.Duration (e.g., 15*time.Minute).
type Config struct {
	DatabasePath  string
	KDFIterations int
	SessionTTL    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "lifetrack.db"
	c.KDFIterations = cryptox.MinIterations
	c.SessionTTL = 15 * time.Minute
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
