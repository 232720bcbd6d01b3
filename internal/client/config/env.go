package config

import (
	"os"

	"github.com/instaguard/instaguard/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv loads the dotenv file named by -env (or ./.env when present)
// into the process environment and copies the public identifiers from it.
// Both the plain and the NEXT_PUBLIC_ spellings are accepted; the plain one
// wins. A -env file that cannot be read panics.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	if v := lookup("RECAPTCHA_SITE_KEY", "NEXT_PUBLIC_RECAPTCHA_SITE_KEY"); v != "" {
		cfg.RecaptchaSiteKey = v
	}
	if v := lookup("GOOGLE_OAUTH_CLIENT_ID", "NEXT_PUBLIC_GOOGLE_OAUTH_CLIENT_ID"); v != "" {
		cfg.GoogleClientID = v
	}
	if v := lookup("INSTAGUARD_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
}

func lookup(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}
