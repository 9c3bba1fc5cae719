package config

import (
	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/network"
)

// BuildConfiguration returns a complete configuration: every section of in is
// overlaid on its default, the caller's value winning for each field it sets.
// A nil section counts as an empty one. A string is set when non-empty, a
// bool when true, and a pointer, func or interface when non-nil.
//
// The three sections are merged independently and the result never aliases
// in's section structs, except for a caller-supplied *LoggerOptions, which is
// carried over as is.
func BuildConfiguration(in ClientConfiguration) ClientConfiguration {
	auth := overlayAuth(DefaultAuthOptions(), in.Auth)
	cache := overlayCache(DefaultCacheOptions(), in.Cache)
	system := overlaySystem(in.System)

	return ClientConfiguration{
		Auth:   &auth,
		Cache:  &cache,
		System: &system,
	}
}

func overlayAuth(defaults NodeAuthOptions, user *NodeAuthOptions) NodeAuthOptions {
	if user == nil {
		return defaults
	}

	if user.ClientID != "" {
		defaults.ClientID = user.ClientID
	}
	if user.Authority != "" {
		defaults.Authority = user.Authority
	}

	return defaults
}

func overlayCache(defaults CacheOptions, user *CacheOptions) CacheOptions {
	if user == nil {
		return defaults
	}

	if user.CacheLocation != "" {
		defaults.CacheLocation = user.CacheLocation
	}
	if user.StoreAuthStateInCookie {
		defaults.StoreAuthStateInCookie = true
	}

	return defaults
}

// overlaySystem asks for the shared default network client only when the
// caller brings none.
func overlaySystem(user *NodeSystemOptions) NodeSystemOptions {
	if user == nil {
		user = &NodeSystemOptions{}
	}

	out := NodeSystemOptions{
		LoggerOptions: user.LoggerOptions,
		NetworkClient: user.NetworkClient,
	}
	if out.LoggerOptions == nil {
		out.LoggerOptions = DefaultLoggerOptions()
	}
	if out.NetworkClient == nil {
		out.NetworkClient = network.DefaultClient()
	}

	return out
}
