package config

import "time"

// Config holds runtime settings for the InstaGuard terminal client.
//
// Fields:
//   - ServerURL: base URL of the InstaGuard backend.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - RequestTimeout: upper bound for a single API call; 0 disables it.
//   - DataDir: where the session database and downloaded exports live.
//   - LogLevel: debug, info, warn or error.
//   - CaptchaToken: a pre-solved captcha token sent with every captcha form.
//   - RecaptchaSiteKey, GoogleClientID: the public identifiers the web
//     frontend was configured with.
type Config struct {
	ServerURL           string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	DataDir             string
	LogLevel            string
	CaptchaToken        string
	RecaptchaSiteKey    string
	GoogleClientID      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 30 * time.Second
	c.DataDir = ".instaguard"
	c.LogLevel = "warn"
}

// CaptchaRequired reports whether captcha fields must be filled in. They
// are when a site key is configured or a token was supplied up front.
func (c *Config) CaptchaRequired() bool {
	return c.RecaptchaSiteKey != "" || c.CaptchaToken != ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
