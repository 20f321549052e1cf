package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggersUsableWithoutInit(t *testing.T) {
	require.NotNil(t, InfoLogger)
	require.NotNil(t, ErrorLogger)
	require.NotNil(t, DebugLogger)

	assert.NotPanics(t, func() {
		Info("request handled", "method", "GET")
		Debug("cache miss")
	})
}

func TestInfoFormatsKeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	InfoLogger = log.New(&buf, "INFO: ", 0)
	defer Init()

	Info("request handled", "method", "GET", "status", 200)

	assert.Contains(t, buf.String(), "request handled method=GET status=200")
}

func TestFormatKV(t *testing.T) {
	assert.Equal(t, "plain", formatKV("plain", nil))
	assert.Equal(t, "msg a=1", formatKV("msg", []interface{}{"a", 1}))
	assert.Equal(t, "msg a=1 dangling", formatKV("msg", []interface{}{"a", 1, "dangling"}))
}
