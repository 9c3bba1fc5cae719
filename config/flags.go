package config

import (
	"flag"
	"fmt"
)

// logLevelValue is a flag.Value that rejects unknown log levels at parse
// time and stores the canonical level name.
type logLevelValue struct {
	target *string
}

func (v logLevelValue) String() string {
	if v.target == nil {
		return ""
	}

	return *v.target
}

func (v logLevelValue) Set(s string) error {
	level, err := ParseLogLevel(s)
	if err != nil {
		return err
	}

	*v.target = level.String()
	return nil
}

// parseFlags registers the configuration flags on fs and parses args.
//
// Flags:
//
//	-client-id application (client) id
//	-authority authority URL
//	-cache-location cache location tag
//	-store-auth-state-in-cookie keep auth request state in cookies
//	-log-level error|warning|info|verbose
//	-pii-logging allow PII in log messages
//	-network-timeout network client timeout (e.g., "10s")
//	-c/-config json file path with configs
func parseFlags(fs *flag.FlagSet, args []string) (*sourceConfig, error) {
	cfg := &sourceConfig{}

	fs.StringVar(&cfg.Auth.ClientID, "client-id", "", "Application (client) id")
	fs.StringVar(&cfg.Auth.Authority, "authority", "", "Authority URL")
	fs.StringVar(&cfg.Cache.Location, "cache-location", "", "Cache location")
	fs.BoolVar(&cfg.Cache.StoreAuthStateInCookie, "store-auth-state-in-cookie", false, "Store auth state in cookie")
	fs.Var(logLevelValue{target: &cfg.System.LogLevel}, "log-level", "Log level: error, warning, info, verbose")
	fs.BoolVar(&cfg.System.PiiLoggingEnabled, "pii-logging", false, "Enable PII logging")
	fs.DurationVar(&cfg.System.NetworkTimeout, "network-timeout", 0, "Network client timeout (e.g., 10s)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
