package qb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

func TestZapLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	logger := qb.NewZapLogger(zap.New(core))

	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET"})
	logger.Info("refreshed token", nil)
	logger.Warn("change poll failed", map[string]interface{}{"error": "boom"})
	logger.Error("request failed", map[string]interface{}{"status": 500})

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, "HTTP Request", entries[0].Message)
	assert.Equal(t, "GET", entries[0].ContextMap()["method"])

	assert.Equal(t, zap.WarnLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])

	assert.Equal(t, zap.ErrorLevel, entries[3].Level)
	assert.EqualValues(t, 500, entries[3].ContextMap()["status"])
}
