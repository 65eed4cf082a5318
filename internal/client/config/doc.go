// Package config loads runtime configuration for the LifeTrack CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the local database file
//	-k int      PBKDF2 iteration count used for key derivation
//	-s int      session lifetime (seconds), 0 disables expiry
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the session lifetime, so values
// can be either strings like "15m" or integer nanoseconds:
//
//	{
//	  "database_path": "lifetrack.db",
//	  "kdf_iterations": 100000,
//	  "session_ttl": "15m"
//	}
//
// Primary API
//
//   - type Config                     — holds DatabasePath, KDFIterations and SessionTTL
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
