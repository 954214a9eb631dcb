package config

import (
	"flag"
	"os"
	"time"

	"github.com/svilenkov/healthconnect/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local database file
//	-b int      delay between first-login permission prompts (milliseconds)
//	-o string   platform os identifier ("android" enables channel setup)
//
// Only the flags listed here are parsed; the rest of os.Args is filtered
// out via flagx.FilterArgs so other components can define their own.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the local database file")
	bootstrapDelay := fs.Int("b", int(cfg.BootstrapDelay.Milliseconds()), "permission prompt delay (in milliseconds)")
	fs.StringVar(&cfg.PlatformOS, "o", cfg.PlatformOS, "platform os identifier")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.BootstrapDelay = time.Duration(*bootstrapDelay) * time.Millisecond
}
