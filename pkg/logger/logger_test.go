package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFields_ScopesLogger(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Production: true, Output: &buf})

	ctx := WithFields(context.Background(), map[string]interface{}{"rid": "abc"})
	Info(ctx).Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "abc", line["rid"])
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "info", line["level"])
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Production: true, Output: &buf})

	Warn(context.Background()).Msg("global")
	assert.Contains(t, buf.String(), `"message":"global"`)
}

func TestProduction_DropsDebug(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Production: true, Output: &buf})

	Debug(context.Background()).Msg("noise")
	assert.Empty(t, buf.String())
}
