package config

import (
	"flag"
	"os"
	"time"

	"github.com/instaguard/instaguard/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-r string   Redis address
//	-m string   classifier service URL
//	-f string   profile lookup service URL
//	-x string   reCAPTCHA secret
//	-o string   Google OAuth client id
//	-w string   allowed CORS origin
//	-v string   model version
//	-l string   log level
//
// SMTP is configured with the long forms -smtp-host, -smtp-port, -smtp-user,
// -smtp-pass and -smtp-from.
//
// Notes:
//   - os.Args is filtered with flagx.FilterArgs first, so the JSON and env
//     flags do not trip this FlagSet.
//   - -t is accepted in minutes and converted to time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-t", "-u", "-p", "-b", "-g", "-e",
		"-r", "-m", "-f", "-x", "-o", "-w", "-v", "-l",
		"-smtp-host", "-smtp-port", "-smtp-user", "-smtp-pass", "-smtp-from",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidity.Minutes()), "access_token_validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.ClassifierURL, "m", config.ClassifierURL, "classifier URL")
	fs.StringVar(&config.ProfileLookupURL, "f", config.ProfileLookupURL, "profile lookup URL")
	fs.StringVar(&config.RecaptchaSecret, "x", config.RecaptchaSecret, "reCAPTCHA secret")
	fs.StringVar(&config.GoogleClientID, "o", config.GoogleClientID, "Google OAuth client id")
	fs.StringVar(&config.CORSOrigin, "w", config.CORSOrigin, "allowed CORS origin")
	fs.StringVar(&config.ModelVersion, "v", config.ModelVersion, "model version")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	fs.StringVar(&config.SMTPHost, "smtp-host", config.SMTPHost, "SMTP host")
	fs.IntVar(&config.SMTPPort, "smtp-port", config.SMTPPort, "SMTP port")
	fs.StringVar(&config.SMTPUser, "smtp-user", config.SMTPUser, "SMTP user")
	fs.StringVar(&config.SMTPPassword, "smtp-pass", config.SMTPPassword, "SMTP password")
	fs.StringVar(&config.SMTPFrom, "smtp-from", config.SMTPFrom, "SMTP sender")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidity = time.Duration(*accessTokenValidity) * time.Minute
}
