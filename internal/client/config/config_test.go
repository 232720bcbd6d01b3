package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"RECAPTCHA_SITE_KEY", "NEXT_PUBLIC_RECAPTCHA_SITE_KEY",
		"GOOGLE_OAUTH_CLIENT_ID", "NEXT_PUBLIC_GOOGLE_OAUTH_CLIENT_ID",
		"INSTAGUARD_SERVER_URL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5000", c.ServerURL)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, ".instaguard", c.DataDir)
	assert.Equal(t, "warn", c.LogLevel)
	assert.False(t, c.CaptchaRequired())
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	clearEnv(t)
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestCaptchaRequired(t *testing.T) {
	assert.True(t, (&Config{RecaptchaSiteKey: "site"}).CaptchaRequired())
	assert.True(t, (&Config{CaptchaToken: "tok"}).CaptchaRequired())
}
