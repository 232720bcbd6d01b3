package config

import (
	"flag"
	"os"
	"time"

	"github.com/instaguard/instaguard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend base URL
//	-i int      online check interval in seconds
//	-t int      request timeout in seconds (0 disables)
//	-d string   data directory
//	-l string   log level
//	-k string   captcha token to send with captcha-protected forms
//
// os.Args is filtered with flagx.FilterArgs first so the JSON and env
// flags do not trip this FlagSet.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-t", "-d", "-l", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend base URL")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 disables)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.CaptchaToken, "k", cfg.CaptchaToken, "captcha token")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
