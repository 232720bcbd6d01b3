package config

import (
	"os"
	"strconv"

	"github.com/instaguard/instaguard/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv loads the dotenv file named by -env (or ./.env when present)
// and copies the variables the backend has always been deployed with.
// A -env file that cannot be read panics, as does a non-numeric SMTP_PORT.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	setString(&cfg.SecretKey, lookup("JWT_SECRET_KEY", "SECRET_KEY"))
	setString(&cfg.DatabaseDSN, lookup("DATABASE_URL"))
	setString(&cfg.RedisAddr, lookup("REDIS_URL"))
	setString(&cfg.ModelVersion, lookup("MODEL_VERSION"))
	setString(&cfg.RecaptchaSecret, lookup("RECAPTCHA_SECRET_KEY"))
	setString(&cfg.GoogleClientID, lookup("GOOGLE_CLIENT_ID", "GOOGLE_OAUTH_CLIENT_ID"))
	setString(&cfg.SMTPUser, lookup("EMAIL_USER"))
	setString(&cfg.SMTPPassword, lookup("EMAIL_PASS"))
	setString(&cfg.SMTPHost, lookup("SMTP_HOST"))

	if v := lookup("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.SMTPPort = port
	}

	// mail goes out as the account it is sent from unless told otherwise
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
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
