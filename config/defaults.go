package config

import (
	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/network"
)

// CacheLocationFileCache selects the file-backed token cache.
const CacheLocationFileCache = "fileCache"

// Default option values. The Default* constructors below return fresh copies
// so a caller can never alter the defaults seen by other configurations.
const (
	DefaultClientID               = ""
	DefaultAuthority              = ""
	DefaultCacheLocation          = CacheLocationFileCache
	DefaultStoreAuthStateInCookie = false
	DefaultPiiLoggingEnabled      = false
	DefaultLogLevel               = LogLevelInfo
)

func noopLoggerCallback(LogLevel, string, bool) {}

// DefaultAuthOptions returns the auth section used when the caller sets none.
func DefaultAuthOptions() NodeAuthOptions {
	return NodeAuthOptions{
		ClientID:  DefaultClientID,
		Authority: DefaultAuthority,
	}
}

// DefaultCacheOptions returns the file-cache defaults.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{
		CacheLocation:          DefaultCacheLocation,
		StoreAuthStateInCookie: DefaultStoreAuthStateInCookie,
	}
}

// DefaultLoggerOptions returns logger options that drop every message, keep
// PII out and log at Info.
func DefaultLoggerOptions() *LoggerOptions {
	return &LoggerOptions{
		LoggerCallback:    noopLoggerCallback,
		PiiLoggingEnabled: DefaultPiiLoggingEnabled,
		LogLevel:          DefaultLogLevel,
	}
}

// DefaultSystemOptions returns the default logger and the shared default
// network client.
func DefaultSystemOptions() NodeSystemOptions {
	return NodeSystemOptions{
		LoggerOptions: DefaultLoggerOptions(),
		NetworkClient: network.DefaultClient(),
	}
}
