package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
		assert.NoError(t, SetLogLevel(level), level)
	}

	assert.Error(t, SetLogLevel("verbose"))
	assert.Error(t, SetLogLevel(""))
}

func TestNewLoggerRejectsInvalidLevel(t *testing.T) {
	_, err := NewLogger("chatty")
	require.Error(t, err)

	logger, err := NewLogger("info")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestFilterAttrDropsSensitiveKeys(t *testing.T) {
	for _, key := range []string{"token", "signing_key", "secret", "password"} {
		got := filterAttr(nil, slog.String(key, "hunter2"))
		assert.True(t, got.Equal(slog.Attr{}), "attribute %q must be dropped", key)
	}

	kept := filterAttr(nil, slog.String("subject", "user-1"))
	assert.Equal(t, "subject", kept.Key)
}

func TestWithModule(t *testing.T) {
	logger, err := NewLogger("info")
	require.NoError(t, err)

	child := logger.WithModule("auth.zumo")
	require.NotNil(t, child)
	assert.NotSame(t, logger, child)
}
