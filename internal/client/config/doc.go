// Package config loads runtime configuration for the InstaGuard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, optionally seeded from a dotenv file given with -env.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-i int      online status check interval (seconds)
//	-t int      request timeout (seconds)
//	-d string   data directory
//	-l string   log level
//	-k string   captcha token
//
// Environment
//
//	RECAPTCHA_SITE_KEY      (or NEXT_PUBLIC_RECAPTCHA_SITE_KEY)
//	GOOGLE_OAUTH_CLIENT_ID  (or NEXT_PUBLIC_GOOGLE_OAUTH_CLIENT_ID)
//	INSTAGUARD_SERVER_URL
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:5000",
//	  "online_check_interval": "3s",
//	  "request_timeout": "30s",
//	  "data_dir": ".instaguard",
//	  "log_level": "info"
//	}
package config
