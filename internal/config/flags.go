package config

import (
	"flag"
	"os"

	"github.com/portalesuite/portale-client/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string   base URL of the backend API (default from Config)
//	-d string   path of the local session database
//
// Arguments are filtered through flagx.FilterArgs so flags owned by other
// components do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "u", cfg.BaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
