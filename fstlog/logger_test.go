package fstlog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wfst/fstlog"
)

// newObserved returns a logger wired to an in-memory core and a pointer to
// the last exit code (-1 until the hook runs).
func newObserved(t *testing.T, opts ...fstlog.Option) (*fstlog.Logger, *observer.ObservedLogs, *int) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	code := -1
	opts = append(opts,
		fstlog.WithZap(zap.New(core)),
		fstlog.WithExit(func(c int) { code = c }),
	)

	return fstlog.New(opts...), logs, &code
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "INFO", fstlog.SeverityInfo.String())
	assert.Equal(t, "WARNING", fstlog.SeverityWarning.String())
	assert.Equal(t, "ERROR", fstlog.SeverityError.String())
	assert.Equal(t, "FATAL", fstlog.SeverityFatal.String())
	assert.Equal(t, "UNKNOWN", fstlog.Severity(42).String())

	for _, s := range []fstlog.Severity{fstlog.SeverityInfo, fstlog.SeverityWarning, fstlog.SeverityError, fstlog.SeverityFatal} {
		assert.Equal(t, s, fstlog.SeverityOf(s.Level()))
	}
	assert.Equal(t, fstlog.SeverityInfo, fstlog.SeverityOf(zapcore.DebugLevel))
	assert.Equal(t, fstlog.SeverityFatal, fstlog.SeverityOf(zapcore.PanicLevel))
}

func TestLogger_Verbosity(t *testing.T) {
	log, logs, _ := newObserved(t, fstlog.WithVerbosity(1))

	assert.True(t, log.V(0))
	assert.True(t, log.V(1))
	assert.False(t, log.V(2))

	log.VInfo(1, "shown")
	log.VInfo(2, "hidden")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
	assert.Equal(t, zapcore.InfoLevel, logs.All()[0].Level)
}

func TestLogger_Levels(t *testing.T) {
	log, logs, code := newObserved(t)

	log.Info("i", zap.Int("n", 3))
	log.Warning("w")
	log.Error("e")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(3), entries[0].ContextMap()["n"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, -1, *code, "non-fatal records must not exit")
}

func TestLogger_FatalRunsExitHook(t *testing.T) {
	log, logs, code := newObserved(t)

	log.Fatal("boom")

	assert.Equal(t, fstlog.ExitCodeFatal, *code)
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.FatalLevel).Len())
}

func TestLogger_Check(t *testing.T) {
	log, logs, code := newObserved(t)

	assert.True(t, log.Check(1+1 == 2, "1+1 == 2"))
	assert.Equal(t, 0, logs.Len())
	assert.Equal(t, -1, *code)

	assert.False(t, log.Check(false, "Plus(w1, Zero()) == w1"))
	assert.Equal(t, fstlog.ExitCodeFatal, *code)

	entries := logs.FilterLevelExact(zapcore.FatalLevel).All()
	require.Len(t, entries, 1)
	msg := entries[0].Message
	assert.True(t, strings.HasPrefix(msg, `Check failed: "Plus(w1, Zero()) == w1" file: logger_test.go line: `), msg)
}

func TestLogger_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	log := fstlog.New(fstlog.WithOutput(&buf), fstlog.WithName("fsttopsort"))

	log.Warning("fsttopsort: Input FST is cyclic")
	require.NoError(t, log.Sync())

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "WARNING\tfsttopsort\t"), line)
	assert.Contains(t, line, "Input FST is cyclic")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { fstlog.WithVerbosity(-1) })
	assert.Panics(t, func() { fstlog.WithOutput(nil) })
	assert.Panics(t, func() { fstlog.WithZap(nil) })
	assert.Panics(t, func() { fstlog.WithExit(nil) })
}

func TestNop(t *testing.T) {
	log := fstlog.Nop()
	assert.Equal(t, 0, log.Verbosity())
	assert.False(t, log.V(1))
	log.Info("discarded")
	assert.NotNil(t, log.Zap())
}

func checkHelper(log *fstlog.Logger) bool {
	return log.CheckDepth(1, false, "helper")
}

func TestLogger_CheckDepth(t *testing.T) {
	log, logs, _ := newObserved(t)

	checkHelper(log)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, `Check failed: "helper" file: logger_test.go`)
	assert.Contains(t, fstlog.CheckMessage("x", 0), "file: logger_test.go")
}
