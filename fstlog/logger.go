package fstlog

import (
	"fmt"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ExitCodeFatal is passed to the exit hook after a FATAL record.
const ExitCodeFatal = 1

// Logger is a leveled logger with a verbosity threshold.
// It is safe for concurrent use.
type Logger struct {
	zl        *zap.Logger
	verbosity int
}

// exitHook runs the configured exit func once a FATAL record is written.
// If exit returns, execution continues after the Fatal call.
type exitHook func(int)

func (h exitHook) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) { h(ExitCodeFatal) }

// New builds a Logger. Without WithZap, records are written to stderr in
// console form: "<SEVERITY>\t<name>\t<message>\t<fields>".
func New(opts ...Option) *Logger {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	zl := o.zl
	if zl == nil {
		zl = zap.New(newConsoleCore(zapcore.AddSync(o.out)))
	}
	zl = zl.WithOptions(zap.WithFatalHook(exitHook(o.exit)))
	if o.name != "" {
		zl = zl.Named(o.name)
	}

	return &Logger{zl: zl, verbosity: o.verbosity}
}

// Nop returns a Logger that discards records. FATAL still exits.
func Nop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

func newConsoleCore(out zapcore.WriteSyncer) zapcore.Core {
	cfg := zapcore.EncoderConfig{
		LevelKey:         "level",
		NameKey:          "name",
		MessageKey:       "msg",
		StacktraceKey:    zapcore.OmitKey,
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      encodeSeverity,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: "\t",
	}

	return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), out, zapcore.DebugLevel)
}

// Verbosity returns the threshold set with WithVerbosity.
func (l *Logger) Verbosity() int { return l.verbosity }

// Zap exposes the underlying zap logger.
func (l *Logger) Zap() *zap.Logger { return l.zl }

// V reports whether detail at level should be logged.
func (l *Logger) V(level int) bool { return level <= l.verbosity }

// Log writes msg with severity s.
func (l *Logger) Log(s Severity, msg string, fields ...zap.Field) {
	if ce := l.zl.Check(s.Level(), msg); ce != nil {
		ce.Write(fields...)
	}
}

// VInfo logs msg at INFO when V(level) holds.
func (l *Logger) VInfo(level int, msg string, fields ...zap.Field) {
	if l.V(level) {
		l.Log(SeverityInfo, msg, fields...)
	}
}

// Info logs at INFO.
func (l *Logger) Info(msg string, fields ...zap.Field) { l.Log(SeverityInfo, msg, fields...) }

// Warning logs at WARNING.
func (l *Logger) Warning(msg string, fields ...zap.Field) { l.Log(SeverityWarning, msg, fields...) }

// Error logs at ERROR.
func (l *Logger) Error(msg string, fields ...zap.Field) { l.Log(SeverityError, msg, fields...) }

// Fatal logs at FATAL and runs the exit hook.
func (l *Logger) Fatal(msg string, fields ...zap.Field) { l.Log(SeverityFatal, msg, fields...) }

// Check logs a FATAL "Check failed" record naming expr and the caller's
// position when cond is false. It returns cond, which matters only when the
// exit hook returns.
func (l *Logger) Check(cond bool, expr string, fields ...zap.Field) bool {
	return l.CheckDepth(1, cond, expr, fields...)
}

// CheckDepth is Check reporting the position depth frames above its own
// caller; depth 0 names the function calling CheckDepth.
func (l *Logger) CheckDepth(depth int, cond bool, expr string, fields ...zap.Field) bool {
	if cond {
		return true
	}
	l.Fatal(CheckMessage(expr, depth+1), fields...)

	return false
}

// CheckMessage formats the "Check failed" text for the caller skip frames
// above the function calling CheckMessage.
func CheckMessage(expr string, skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		file, line = "???", 0
	}

	return fmt.Sprintf("Check failed: %q file: %s line: %d", expr, filepath.Base(file), line)
}

// Sync flushes buffered records.
func (l *Logger) Sync() error { return l.zl.Sync() }
