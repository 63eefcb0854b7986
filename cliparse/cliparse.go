package cliparse

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// DefaultBlockedReferrers are the front-end origins (Vite dev server and the
// bundled app) that must never read gated responses back.
var DefaultBlockedReferrers = []string{
	"localhost:5173",
	"localhost:5000",
	"127.0.0.1:5173",
	"127.0.0.1:5000",
}

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	DataDir      string
	StaticDir    string
	Debug        bool

	// Read gates. Both words are stored lowercased.
	ResponsesSecret string
	TeddyCodeword   string

	BlockedReferrers []string
	VisitSalt        string
	Location         *time.Location
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var blocked, tz string

	fs := flag.NewFlagSet("valentine-week", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.DataDir, "data", "", "Directory for response files")
	fs.StringVar(&cfg.StaticDir, "static", "", "Directory of the built front-end")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.ResponsesSecret, "secret", "", "Word that unlocks /responses endpoints (prefer env)")
	fs.StringVar(&cfg.TeddyCodeword, "codeword", "", "Word that unlocks /api/teddy-responses (prefer env)")
	fs.StringVar(&cfg.VisitSalt, "visit-salt", "", "Salt for visitor IP hashing (prefer env)")

	fs.StringVar(&blocked, "blocked-referrers", "", "Comma-separated referrer substrings denied on teddy responses")
	fs.StringVar(&tz, "tz", "", "Time zone used to resolve today's date")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if !cfg.Debug {
		if v := os.Getenv("DEBUG"); v != "" {
			debug, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid DEBUG env variable")
			}
			cfg.Debug = debug
		}
	}

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
		if cfg.DataDir == "" {
			cfg.DataDir = "data"
		}
	}

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
		if cfg.StaticDir == "" {
			cfg.StaticDir = filepath.Join("..", "frontend", "dist")
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = filepath.Join(cfg.DataDir, "valentine.db")
	}

	// Secrets - the responses word MUST be provided
	if cfg.ResponsesSecret == "" {
		cfg.ResponsesSecret = os.Getenv("RESPONSES_SECRET")
	}
	if cfg.ResponsesSecret == "" {
		return Config{}, errors.New("RESPONSES_SECRET required")
	}
	cfg.ResponsesSecret = strings.ToLower(cfg.ResponsesSecret)

	if cfg.TeddyCodeword == "" {
		cfg.TeddyCodeword = os.Getenv("TEDDY_CODEWORD")
	}
	if cfg.TeddyCodeword == "" {
		cfg.TeddyCodeword = cfg.ResponsesSecret
	}
	cfg.TeddyCodeword = strings.ToLower(cfg.TeddyCodeword)

	if cfg.VisitSalt == "" {
		cfg.VisitSalt = os.Getenv("VISIT_SALT")
	}
	if cfg.VisitSalt == "" {
		cfg.VisitSalt = cfg.ResponsesSecret
	}

	if blocked == "" {
		blocked = os.Getenv("BLOCKED_REFERRERS")
	}
	if blocked == "" {
		cfg.BlockedReferrers = append([]string(nil), DefaultBlockedReferrers...)
	} else {
		cfg.BlockedReferrers = splitList(blocked)
	}

	if tz == "" {
		tz = os.Getenv("TZ_NAME")
	}
	if tz == "" {
		cfg.Location = time.Local
	} else {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, errors.New("unknown time zone " + tz)
		}
		cfg.Location = loc
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
