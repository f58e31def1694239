package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/sentimeter/internal/flagx"
)

var knownFlags = []string{"-e", "-k", "-t", "-H", "-n", "-l", "-r"}

// parseFlags populates Config fields from command-line flags. Only the
// flags listed in knownFlags are looked at (see flagx.FilterArgs), so -c is
// left to parseJson. A malformed value panics.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Endpoint, "e", cfg.Endpoint, "classification endpoint URL")
	fs.StringVar(&cfg.CredentialPath, "k", cfg.CredentialPath, "credential file path")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.HistoryPath, "H", cfg.HistoryPath, "history database path (empty disables history)")
	fs.IntVar(&cfg.HistoryLimit, "n", cfg.HistoryLimit, "analyses kept in history (0 = unlimited)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.IntVar(&cfg.Recent, "r", cfg.Recent, "print the N most recent analyses and exit")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}

	// Only an explicit -t replaces a sub-second timeout from JSON or env.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
