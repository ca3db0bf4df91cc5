package log

import (
	"bytes"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCustomLogger(&buf, LogLevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	assert.Empty(t, buf.String())

	logger.Warn("warn %s", "message")
	logger.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "[WARN] warn message")
	assert.Contains(t, out, "[ERROR] error message")
	assert.Contains(t, out, "[ragroute]")
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "INFO", LogLevelInfo.String())
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "NONE", LogLevelNone.String())
	assert.Equal(t, "UNKNOWN(42)", LogLevel(42).String())
}

func TestNoOpLogger(t *testing.T) {
	logger := &NoOpLogger{}

	// Must not panic
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
}

func TestPackageLevelLogger(t *testing.T) {
	original := GetDefaultLogger()
	defer SetDefaultLogger(original)

	var buf bytes.Buffer
	SetDefaultLogger(NewCustomLogger(&buf, LogLevelInfo))

	Info("hello %d", 7)
	assert.Contains(t, buf.String(), "[INFO] hello 7")
}

func TestGologLogger(t *testing.T) {
	var buf bytes.Buffer
	gl := golog.New()
	gl.SetOutput(&buf)

	logger := NewGologLogger(gl)
	logger.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, logger.GetLevel())

	logger.Info("golog %s", "info")
	assert.Contains(t, buf.String(), "golog info")

	logger.SetLevel(LogLevelError)
	buf.Reset()
	logger.Info("should be suppressed")
	assert.Empty(t, buf.String())
}
