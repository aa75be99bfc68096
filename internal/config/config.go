// Package config reads server settings from flags, the environment and an
// optional .env file. Flags win over the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/erazemk/seznam/internal/visitor"
)

// Config holds the server settings.
type Config struct {
	DBPath       string
	Addr         string
	LogPath      string
	ScratchScope visitor.Mode
	// SecretKey signs session tokens. Empty means use the secret stored in
	// the database.
	SecretKey string
}

const usage = `Usage: seznam [flags]

Flags:
  -d, -db <path>          SQLite database path (default: seznam.sqlite3)
  -a, -addr <host:port>   listen address (default: :8080)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -s, -scratch <scope>    scratch list scope: global or session (default: global)
  -h, -help               show this help and exit

Environment (flags take precedence, .env is read if present):
  SEZNAM_DB, SEZNAM_ADDR, SEZNAM_LOG, SEZNAM_SCRATCH_SCOPE
  SECRET_KEY              session signing key (default: generated and stored in the database)
`

// Load reads envFile (if it exists) into the environment and parses args.
// It returns flag.ErrHelp when help was requested.
func Load(args []string, envFile string, out io.Writer) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	var scope string

	flags := flag.NewFlagSet("seznam", flag.ContinueOnError)
	flags.SetOutput(out)

	dbDefault := envOr("SEZNAM_DB", "seznam.sqlite3")
	flags.StringVar(&cfg.DBPath, "db", dbDefault, "")
	flags.StringVar(&cfg.DBPath, "d", dbDefault, "")

	addrDefault := envOr("SEZNAM_ADDR", ":8080")
	flags.StringVar(&cfg.Addr, "addr", addrDefault, "")
	flags.StringVar(&cfg.Addr, "a", addrDefault, "")

	logDefault := os.Getenv("SEZNAM_LOG")
	flags.StringVar(&cfg.LogPath, "log", logDefault, "")
	flags.StringVar(&cfg.LogPath, "l", logDefault, "")

	scopeDefault := envOr("SEZNAM_SCRATCH_SCOPE", string(visitor.Global))
	flags.StringVar(&scope, "scratch", scopeDefault, "")
	flags.StringVar(&scope, "s", scopeDefault, "")

	flags.Usage = func() { fmt.Fprint(out, usage) }

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument: %s", flags.Arg(0))
	}

	mode, err := visitor.ParseMode(scope)
	if err != nil {
		return Config{}, err
	}
	cfg.ScratchScope = mode
	cfg.SecretKey = os.Getenv("SECRET_KEY")

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
