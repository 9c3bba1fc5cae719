package config

import (
	"fmt"
	"time"

	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/network"
)

// sourceConfig is the partial configuration read from a single source (env,
// flags or JSON file). Fields are flat scalars so sources can be folded with
// mergo; the zero value of every field means "not set by this source".
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env), on top
//     of the global MSAL_ prefix.
//   - env:       environment variable name for scalar fields.
type sourceConfig struct {
	Auth   authSource   `envPrefix:"AUTH_"`
	Cache  cacheSource  `envPrefix:"CACHE_"`
	System systemSource `envPrefix:"SYSTEM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: MSAL_CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

type authSource struct {
	// Env: MSAL_AUTH_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`
	// Env: MSAL_AUTH_AUTHORITY
	Authority string `env:"AUTHORITY"`
}

type cacheSource struct {
	// Env: MSAL_CACHE_LOCATION
	Location string `env:"LOCATION"`
	// Env: MSAL_CACHE_STORE_AUTH_STATE_IN_COOKIE
	StoreAuthStateInCookie bool `env:"STORE_AUTH_STATE_IN_COOKIE"`
}

type systemSource struct {
	// LogLevel is kept as text: LogLevelError is the zero LogLevel, so an
	// empty string is the only way to tell "unset" apart.
	// Env: MSAL_SYSTEM_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
	// Env: MSAL_SYSTEM_PII_LOGGING_ENABLED
	PiiLoggingEnabled bool `env:"PII_LOGGING_ENABLED"`
	// NetworkTimeout, when set, makes the loader supply its own network
	// client instead of leaving the default to BuildConfiguration.
	// Env: MSAL_SYSTEM_NETWORK_TIMEOUT
	NetworkTimeout time.Duration `env:"NETWORK_TIMEOUT"`
}

// toClientConfiguration converts the folded sources into a partial
// [ClientConfiguration]. Sections no source mentioned stay nil. Logger fields
// from all sources make up a single LoggerOptions whose level falls back to
// [DefaultLogLevel] and whose callback is left nil for the caller to set.
func (s *sourceConfig) toClientConfiguration() (*ClientConfiguration, error) {
	cfg := &ClientConfiguration{}

	if s.Auth != (authSource{}) {
		cfg.Auth = &NodeAuthOptions{
			ClientID:  s.Auth.ClientID,
			Authority: s.Auth.Authority,
		}
	}

	if s.Cache != (cacheSource{}) {
		cfg.Cache = &CacheOptions{
			CacheLocation:          s.Cache.Location,
			StoreAuthStateInCookie: s.Cache.StoreAuthStateInCookie,
		}
	}

	var system NodeSystemOptions
	if s.System.LogLevel != "" || s.System.PiiLoggingEnabled {
		level := DefaultLogLevel
		if s.System.LogLevel != "" {
			parsed, err := ParseLogLevel(s.System.LogLevel)
			if err != nil {
				return nil, fmt.Errorf("invalid system log level: %w", err)
			}
			level = parsed
		}

		system.LoggerOptions = &LoggerOptions{
			PiiLoggingEnabled: s.System.PiiLoggingEnabled,
			LogLevel:          level,
		}
	}
	if s.System.NetworkTimeout > 0 {
		system.NetworkClient = network.NewHTTPClient(s.System.NetworkTimeout)
	}
	if system.LoggerOptions != nil || system.NetworkClient != nil {
		cfg.System = &system
	}

	return cfg, nil
}
