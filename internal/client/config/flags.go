package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/lifetrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local database file (default from Config)
//	-k int      PBKDF2 iteration count (default from Config)
//	-s int      session lifetime in seconds, 0 disables expiry (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.IntVar(&cfg.KDFIterations, "k", cfg.KDFIterations, "PBKDF2 iteration count")
	sessionTTL := fs.Int("s", int(cfg.SessionTTL.Seconds()), "session lifetime (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTTL = time.Duration(*sessionTTL) * time.Second
}
