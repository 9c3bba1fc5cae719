// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/network"
)

// ClientConfiguration is the top-level configuration envelope. Every section
// is optional on input; after [BuildConfiguration] all three are set and
// complete.
type ClientConfiguration struct {
	// Auth identifies the application and the authority it trusts.
	Auth *NodeAuthOptions `json:"auth,omitempty"`

	// Cache describes where authentication state is kept.
	Cache *CacheOptions `json:"cache,omitempty"`

	// System holds library-level runtime knobs (logging, networking).
	System *NodeSystemOptions `json:"system,omitempty"`
}

// NodeAuthOptions identifies the registered application and the identity
// provider endpoint.
type NodeAuthOptions struct {
	// ClientID is the application (client) id assigned at registration.
	// Empty means unset.
	ClientID string `json:"clientId"`

	// Authority is the URL of the trusted token issuer, for example
	// "https://login.microsoftonline.com/common". Empty means unset.
	Authority string `json:"authority"`
}

// CacheOptions selects the storage medium for persisted authentication state.
type CacheOptions struct {
	// CacheLocation is a tag naming the cache backend, e.g.
	// [CacheLocationFileCache]. An empty value is treated as unset, so
	// BuildConfiguration always replaces it with [DefaultCacheLocation].
	CacheLocation string `json:"cacheLocation"`

	// StoreAuthStateInCookie asks the client to keep the auth request state
	// in cookies. Defaults to false.
	StoreAuthStateInCookie bool `json:"storeAuthStateInCookie"`
}

// LoggerCallback receives every message the client decides to log.
// containsPii reports whether message may carry personally identifiable
// information.
type LoggerCallback func(level LogLevel, message string, containsPii bool)

// LoggerOptions configures the client logger.
type LoggerOptions struct {
	LoggerCallback    LoggerCallback `json:"-"`
	PiiLoggingEnabled bool           `json:"piiLoggingEnabled"`
	LogLevel          LogLevel       `json:"logLevel"`
}

// NodeSystemOptions holds the logger and network capabilities handed to the
// client.
type NodeSystemOptions struct {
	// LoggerOptions is replaced as a whole when supplied; partial logger
	// options are not merged with the defaults.
	LoggerOptions *LoggerOptions `json:"loggerOptions,omitempty"`

	// NetworkClient sends the client's outbound requests.
	NetworkClient network.Module `json:"-"`
}
