package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gownshop/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   API base URL
//	-t int      request timeout in seconds
//	-s string   session storage path ("" keeps the session in memory)
//	-l string   locale, en or ar
//
// Only these flags are looked at; flagx.FilterArgs drops the rest.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"a", "t", "s", "l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "session storage path")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "locale (en or ar)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
