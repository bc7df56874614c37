package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLevels(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, zerolog.WarnLevel, Setup(0, &buf).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, Setup(1, &buf).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, Setup(2, &buf).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, Setup(5, &buf).GetLevel())
}

func TestAdapterEmitsFields(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	adapter := NewAdapter(log, "core")

	adapter.Info("registered", "client", "Avi", "price", 60)

	out := buf.String()
	assert.Contains(t, out, `"component":"core"`)
	assert.Contains(t, out, `"client":"Avi"`)
	assert.Contains(t, out, `"price":60`)
	assert.Contains(t, out, `"message":"registered"`)
}

func TestAdapterDropsDanglingKey(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAdapter(zerolog.New(&buf), "core")

	adapter.Error("boom", "lonely")

	out := buf.String()
	assert.Contains(t, out, `"message":"boom"`)
	assert.NotContains(t, out, "lonely")
}

func TestAdapterSkipsNonStringKeys(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAdapter(zerolog.New(&buf), "core")

	adapter.Warn("odd", 42, "value")

	assert.Contains(t, buf.String(), `"message":"odd"`)
}
