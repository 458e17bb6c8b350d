/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests for the logging system: configuration validation, file output
setup, engine-specific logging methods, and cleanup on close.
*/

package logging

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dir string) *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatText,
		OutputDir: dir,
		MaxFiles:  5,
		MaxSize:   1024 * 1024,
		Timestamp: true,
		Colors:    false,
	}
}

// TestConfigValidate tests the config checks
func TestConfigValidate(t *testing.T) {
	valid := testConfig(t.TempDir())
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*LoggerConfig)
		want   string
	}{
		{"empty output dir", func(c *LoggerConfig) { c.OutputDir = "" }, "output_dir"},
		{"zero max files", func(c *LoggerConfig) { c.MaxFiles = 0 }, "max_files"},
		{"zero max size", func(c *LoggerConfig) { c.MaxSize = 0 }, "max_size"},
		{"bad format", func(c *LoggerConfig) { c.Format = "xml" }, "unsupported log format"},
		{"bad level", func(c *LoggerConfig) { c.Level = "loud" }, "unsupported log level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := testConfig(t.TempDir())
			tc.mutate(config)
			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestNewLoggerCreatesLogFile tests file output setup
func TestNewLoggerCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(testConfig(dir))
	require.NoError(t, err)
	defer logger.Close()

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-fuzzy_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)
}

// TestNewLoggerDefaults tests the nil-config default configuration
func TestNewLoggerDefaults(t *testing.T) {
	logger, err := NewLogger(nil)
	require.NoError(t, err)
	defer logger.Close()

	assert.Equal(t, LogLevelInfo, logger.config.Level)
	assert.NotNil(t, logger.GetLogger())
}

// TestEngineLoggingMethods tests the structured logging helpers write without
// panicking and accept nil field maps
func TestEngineLoggingMethods(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(testConfig(dir))
	require.NoError(t, err)
	defer logger.Close()

	logger.LogValidation("tipping", 3, 3, nil)
	logger.LogCompute("trace-1", map[string]float64{"tip": 12.67}, 120*time.Microsecond, nil)
	logger.LogRuleActivation("decent", 1.0, map[string]interface{}{"system": "tipping"})
	logger.LogBatch(25, 4, time.Millisecond, nil)
	logger.LogNoActivation("tipping", "tip", nil)

	logger.Debug("async debug", nil)
	logger.Info("async info", map[string]interface{}{"k": "v"})
	logger.Warning("async warning", nil)
	logger.Error("async error", nil)

	// Give the async queue a moment to drain before the file is closed.
	time.Sleep(50 * time.Millisecond)
}

// TestCustomFormat tests the custom formatter wiring
func TestCustomFormat(t *testing.T) {
	config := testConfig(t.TempDir())
	config.Format = LogFormatCustom
	logger, err := NewLogger(config)
	require.NoError(t, err)
	defer logger.Close()

	logger.LogValidation("tipping", 3, 3, nil)
}

// TestJSONFormat tests the JSON formatter wiring
func TestJSONFormat(t *testing.T) {
	config := testConfig(t.TempDir())
	config.Format = LogFormatJSON
	logger, err := NewLogger(config)
	require.NoError(t, err)
	defer logger.Close()

	logger.LogCompute("trace-2", map[string]float64{"tip": 20}, time.Millisecond, nil)
}

// TestClose tests shutdown and that close is idempotent on the file handle
func TestClose(t *testing.T) {
	logger, err := NewLogger(testConfig(t.TempDir()))
	require.NoError(t, err)
	assert.NoError(t, logger.Close())
}
