package config

import (
	"fmt"
	"strconv"
	"strings"
)

// LogLevel is the verbosity of the client logger. Higher values log more.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarning
	LogLevelInfo
	LogLevelVerbose
)

var logLevelNames = map[LogLevel]string{
	LogLevelError:   "Error",
	LogLevelWarning: "Warning",
	LogLevelInfo:    "Info",
	LogLevelVerbose: "Verbose",
}

func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}

	return "LogLevel(" + strconv.Itoa(int(l)) + ")"
}

// ParseLogLevel accepts a level name (case-insensitive, "warn" included) or
// its numeric value.
func ParseLogLevel(s string) (LogLevel, error) {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "error":
		return LogLevelError, nil
	case "warning", "warn":
		return LogLevelWarning, nil
	case "info":
		return LogLevelInfo, nil
	case "verbose", "debug":
		return LogLevelVerbose, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < int(LogLevelError) || n > int(LogLevelVerbose) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, s)
	}

	return LogLevel(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (l LogLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. JSON numbers are handled
// by UnmarshalJSON.
func (l *LogLevel) UnmarshalText(text []byte) error {
	level, err := ParseLogLevel(string(text))
	if err != nil {
		return err
	}

	*l = level
	return nil
}

// UnmarshalJSON accepts both `"verbose"` and `3`.
func (l *LogLevel) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	return l.UnmarshalText([]byte(strings.Trim(string(b), `"`)))
}
