package logger

import (
	"github.com/rs/zerolog"

	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/config"
)

// ZerologLevel maps a client log level onto zerolog. Verbose maps to Debug;
// unknown levels map to zerolog.NoLevel.
func ZerologLevel(level config.LogLevel) zerolog.Level {
	switch level {
	case config.LogLevelError:
		return zerolog.ErrorLevel
	case config.LogLevelWarning:
		return zerolog.WarnLevel
	case config.LogLevelInfo:
		return zerolog.InfoLevel
	case config.LogLevelVerbose:
		return zerolog.DebugLevel
	default:
		return zerolog.NoLevel
	}
}

// LevelFor returns a child logger that drops entries below level.
func (l *Logger) LevelFor(level config.LogLevel) *Logger {
	return &Logger{l.Level(ZerologLevel(level))}
}

// NewCallback adapts l into a [config.LoggerCallback]. Each message becomes
// one entry at the mapped level with a boolean "pii" field.
func NewCallback(l *Logger) config.LoggerCallback {
	return func(level config.LogLevel, message string, containsPii bool) {
		l.WithLevel(ZerologLevel(level)).
			Bool("pii", containsPii).
			Msg(message)
	}
}
