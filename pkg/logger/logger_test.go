package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	InitWithOutput(&buf)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Log.WithField("component", "test").Debug("hello")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "test", line["component"])
}

func TestInitFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	var buf bytes.Buffer
	InitWithOutput(&buf)
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
