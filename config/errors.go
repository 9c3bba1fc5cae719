package config

import "errors"

// ErrUnknownLogLevel is returned when a log level name or number does not
// match any [LogLevel].
var ErrUnknownLogLevel = errors.New("unknown log level")
