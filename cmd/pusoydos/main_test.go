package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInMemory(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"--seed=7", "--players=3", "--bots=lowest,random"}, &out, io.Discard)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "game "))
	assert.True(t, strings.HasPrefix(lines[1], "1. bot-"))
	assert.True(t, strings.HasPrefix(lines[3], "3. bot-"))
}

func TestRunIsDeterministicForASeed(t *testing.T) {
	var first, second bytes.Buffer
	args := []string{"--seed=11", "--players=4", "--jokers=0"}
	require.NoError(t, run(context.Background(), args, &first, io.Discard))
	require.NoError(t, run(context.Background(), args, &second, io.Discard))

	// Game ids differ; the placings must not.
	trim := func(s string) string { return s[strings.Index(s, "\n")+1:] }
	assert.Equal(t, trim(first.String()), trim(second.String()))
}

func TestRunWithRedisAndSessions(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("PUSOY_SESSION_SECRET", "sim-secret")

	var out bytes.Buffer
	err := run(context.Background(), []string{"--seed=3", "--players=2", "--redis-addr=" + mr.Addr()}, &out, io.Discard)
	require.NoError(t, err)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "pd:game:"))
	assert.Contains(t, out.String(), "2. bot-")
}

func TestRunRejectsBadStrategy(t *testing.T) {
	err := run(context.Background(), []string{"--seed=1", "--bots=clairvoyant"}, io.Discard, io.Discard)
	assert.Error(t, err)
}
