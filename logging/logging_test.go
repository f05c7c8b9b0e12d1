package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/crypto-insight/config"
)

func TestApply_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	require.NoError(t, apply(logger, config.LogConfig{Level: "debug", Format: "json"}, &buf))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	Component(logger, "Contracts").WithField("symbol", "BTC").Info("resolved")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Contracts", entry["component"])
	assert.Equal(t, "BTC", entry["symbol"])
	assert.Equal(t, "resolved", entry["msg"])
}

func TestApply_Defaults(t *testing.T) {
	logger := logrus.New()
	require.NoError(t, apply(logger, config.LogConfig{}, &bytes.Buffer{}))
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestApply_InvalidLeavesLoggerUntouched(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	assert.Error(t, apply(logger, config.LogConfig{Level: "loud"}, &bytes.Buffer{}))
	assert.Error(t, apply(logger, config.LogConfig{Format: "xml"}, &bytes.Buffer{}))
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
}

func TestComponent_DefaultsToStandardLogger(t *testing.T) {
	entry := Component(nil, "API")
	assert.Equal(t, logrus.StandardLogger(), entry.Logger)
	assert.Equal(t, "API", entry.Data["component"])
}
