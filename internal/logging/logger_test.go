package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesFieldsAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	require.NoError(t, err)

	logger.Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	child := logger.WithField("game", "g1").WithFields(map[string]interface{}{"seat": 2})
	child.Info("played %s", "3♣")

	out := buf.String()
	assert.Contains(t, out, "played 3♣")
	assert.Contains(t, out, "game=g1")
	assert.Contains(t, out, "seat=2")
	assert.Equal(t, map[string]interface{}{"game": "g1", "seat": 2}, child.Fields())
	assert.Empty(t, logger.Fields(), "parent logger must not inherit child fields")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}
