package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by ApplyEnv.
const (
	EnvAddr          = "ROOMMATE_ADDR"
	EnvPort          = "PORT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvSeedSource    = "ROOMMATE_SEED_SOURCE"
	EnvSeedPath      = "ROOMMATE_SEED_PATH"
	EnvSeedWatch     = "ROOMMATE_SEED_WATCH"
	EnvJWTSecret     = "JWT_SECRET"
	EnvTokenTTL      = "ROOMMATE_TOKEN_TTL"
	EnvNATSURL       = "NATS_URL"
	EnvInviteBaseURL = "ROOMMATE_INVITE_BASE_URL"
	EnvCORSOrigins   = "ROOMMATE_CORS_ORIGINS"
)

// LookupFunc reads one environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides c with the environment variables lookup finds.
// PORT is honoured when ROOMMATE_ADDR is not set.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	} else if port, ok := lookup(EnvPort); ok && port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, port, err)
		}
		c.Server.Addr = ":" + port
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	str(EnvSeedSource, &c.Seed.Source)
	str(EnvSeedPath, &c.Seed.Path)
	if v, ok := lookup(EnvSeedWatch); ok && v != "" {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeedWatch, v, err)
		}
		c.Seed.Watch = watch
	}
	str(EnvJWTSecret, &c.Auth.JWTSecret)
	if v, ok := lookup(EnvTokenTTL); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTokenTTL, v, err)
		}
		c.Auth.TokenTTL = ttl
	}
	str(EnvNATSURL, &c.NATS.URL)
	str(EnvInviteBaseURL, &c.Views.InviteBaseURL)
	if v, ok := lookup(EnvCORSOrigins); ok && v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.CORSOrigins = origins
	}
	return nil
}
