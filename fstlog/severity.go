package fstlog

import "go.uber.org/zap/zapcore"

// Severity is the tag carried by every record.
type Severity int8

const (
	// SeverityInfo is routine progress.
	SeverityInfo Severity = iota
	// SeverityWarning is an unexpected but recoverable condition.
	SeverityWarning
	// SeverityError is a failed operation.
	SeverityError
	// SeverityFatal is logged and then the process exits.
	SeverityFatal
)

// String returns the tag as printed: INFO, WARNING, ERROR or FATAL.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Level maps s onto the zap level that carries it.
func (s Severity) Level() zapcore.Level {
	switch s {
	case SeverityWarning:
		return zapcore.WarnLevel
	case SeverityError:
		return zapcore.ErrorLevel
	case SeverityFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// SeverityOf is the inverse of Level. Levels below INFO read as INFO and
// levels above ERROR as FATAL.
func SeverityOf(l zapcore.Level) Severity {
	switch {
	case l <= zapcore.InfoLevel:
		return SeverityInfo
	case l == zapcore.WarnLevel:
		return SeverityWarning
	case l == zapcore.ErrorLevel:
		return SeverityError
	default:
		return SeverityFatal
	}
}

// encodeSeverity prints zap levels with the tags above.
func encodeSeverity(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(SeverityOf(l).String())
}
