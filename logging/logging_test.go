package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/0xalexb/yamlns"
	"github.com/0xalexb/yamlns/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	config := logging.Config{Level: "INFO"}
	logger := logging.NewLogger(config, &buf)

	logger.Info("test message", slog.String("key", "value"))

	var logEntry map[string]any

	err := json.Unmarshal(buf.Bytes(), &logEntry)
	require.NoError(t, err, "output should be valid JSON")
	require.Equal(t, "test message", logEntry["msg"])
	require.Equal(t, "value", logEntry["key"])
	require.Equal(t, "INFO", logEntry["level"])
}

func TestNewLogger_TextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	config := logging.Config{Level: "INFO", Format: "text"}
	logger := logging.NewLogger(config, &buf)

	logger.Info("test message", slog.String("key", "value"))

	output := buf.String()
	assert.Contains(t, output, "msg=\"test message\"")
	assert.Contains(t, output, "key=value")
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		configLevel string
		logLevel    slog.Level
		shouldLog   bool
	}{
		{
			name:        "debug level logs debug",
			configLevel: "DEBUG",
			logLevel:    slog.LevelDebug,
			shouldLog:   true,
		},
		{
			name:        "info level does not log debug",
			configLevel: "INFO",
			logLevel:    slog.LevelDebug,
			shouldLog:   false,
		},
		{
			name:        "warning alias maps to warn",
			configLevel: "WARNING",
			logLevel:    slog.LevelWarn,
			shouldLog:   true,
		},
		{
			name:        "error level does not log info",
			configLevel: "ERROR",
			logLevel:    slog.LevelInfo,
			shouldLog:   false,
		},
		{
			name:        "lowercase level is accepted",
			configLevel: "debug",
			logLevel:    slog.LevelDebug,
			shouldLog:   true,
		},
		{
			name:        "empty level defaults to info",
			configLevel: "",
			logLevel:    slog.LevelInfo,
			shouldLog:   true,
		},
		{
			name:        "invalid level defaults to info",
			configLevel: "INVALID",
			logLevel:    slog.LevelInfo,
			shouldLog:   true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			config := logging.Config{Level: testCase.configLevel}
			logger := logging.NewLogger(config, &buf)

			logger.Log(context.Background(), testCase.logLevel, "test message")

			if testCase.shouldLog {
				require.NotEmpty(t, buf.String(), "log should be written")
			} else {
				require.Empty(t, buf.String(), "log should not be written")
			}
		})
	}
}

func TestFromNamespace(t *testing.T) {
	t.Parallel()

	cfg, err := yamlns.New(map[string]any{
		"level":  "error",
		"format": "text",
	})
	require.NoError(t, err)

	var buf bytes.Buffer

	logger := logging.FromNamespace(cfg, &buf)

	logger.Info("suppressed")
	require.Empty(t, buf.String(), "info should be below the configured level")

	logger.Error("reported")
	assert.Contains(t, buf.String(), "msg=reported")
}

func TestFromNamespace_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := yamlns.New(map[string]any{})
	require.NoError(t, err)

	var buf bytes.Buffer

	logger := logging.FromNamespace(cfg, &buf)

	logger.Info("test message")

	var logEntry map[string]any

	err = json.Unmarshal(buf.Bytes(), &logEntry)
	require.NoError(t, err, "default output should be JSON")
	require.Equal(t, "INFO", logEntry["level"])
}
