// Package config describes how an authentication client is configured and
// turns a partial, caller-supplied configuration into a complete one.
//
// The caller constructs a [ClientConfiguration] with any subset of its auth,
// cache and system sections filled in. [BuildConfiguration] overlays each
// section on top of its documented default, field by field, with the caller's
// value winning whenever it is set. The overlay is shallow: a caller-supplied
// [LoggerOptions] replaces the default logger options as a whole.
//
// Nothing here validates the result. An empty client id or authority is
// passed through to whatever consumes the configuration.
//
// [LoadClientConfiguration] gathers a partial configuration from environment
// variables, command-line flags and an optional JSON file, in that priority
// order (later sources override earlier non-zero fields).
package config
