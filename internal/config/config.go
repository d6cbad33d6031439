package config

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Config holds everything the server needs from the environment.
// Values come from real environment variables; main loads .env first
// so local development works without exporting anything.
type Config struct {
	Port           string
	SpreadsheetID  string
	Credentials    []byte // service account key in JSON form
	JWTSecret      []byte
	JWTExpiry      time.Duration
	UploadDir      string
	BaseURL        string
	AllowedOrigins []string
}

// Load reads the configuration from the environment.
//
// The service account credentials are resolved in order of precedence:
//  1. GOOGLE_CREDENTIALS_JSON - the full key JSON in an env var (the
//     deployment secret store)
//  2. a local credentials file (CREDENTIALS_FILE, default credentials.json)
//
// A missing credential bundle is NOT fatal here: the server starts in a
// degraded state and surfaces the connection problem on every request, so
// the operator gets actionable guidance instead of a crash loop.
func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		SpreadsheetID: os.Getenv("SPREADSHEET_ID"),
		JWTSecret:     []byte(getEnv("JWT_SECRET", "CHANGE_ME_IN_PRODUCTION")),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8080"),
	}

	// Token lifetime, default 72h to match the old session behaviour.
	cfg.JWTExpiry = 72 * time.Hour
	if v := os.Getenv("JWT_EXPIRE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("Invalid JWT_EXPIRE %q, using 72h", v)
		} else {
			cfg.JWTExpiry = d
		}
	}

	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		cfg.AllowedOrigins = []string{origin}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:5173"}
	}

	// Credential bundle: secret store first, file second.
	if raw := os.Getenv("GOOGLE_CREDENTIALS_JSON"); raw != "" {
		cfg.Credentials = []byte(raw)
	} else {
		path := getEnv("CREDENTIALS_FILE", "credentials.json")
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("WARNING: no GOOGLE_CREDENTIALS_JSON set and could not read %s: %v", path, err)
		} else {
			cfg.Credentials = data
		}
	}

	return cfg
}

// Validate reports the configuration problems that prevent the sheet
// backend from being reachable. The caller decides whether to run degraded.
func (c *Config) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("SPREADSHEET_ID is not set")
	}
	if len(c.Credentials) == 0 {
		return fmt.Errorf("no service account credentials configured")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
