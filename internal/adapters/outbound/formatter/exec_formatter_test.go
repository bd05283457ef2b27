package formatter_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylegate/stylegate/internal/adapters/outbound/formatter"
	"github.com/stylegate/stylegate/internal/domain"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

func TestExecFormatter_CapturesStdout(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Foo.m")
	require.NoError(t, os.WriteFile(file, []byte("hello\nworld\n"), 0644))

	// cat is the identity validator: output equals input.
	out, err := formatter.New().Format(context.Background(), "cat", file)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", out)
}

func TestExecFormatter_MissingBinary(t *testing.T) {
	_, err := formatter.New().Format(context.Background(), "definitely-not-a-validator", "Foo.m")

	require.Error(t, err)
	var verr *domain.ValidatorError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Foo.m", verr.Path)
}

func TestExecFormatter_NonZeroExitIsFailure(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "angry-format", `echo "partial output"
echo "bad flag" >&2
exit 1
`)

	out, err := formatter.New().Format(context.Background(), script, "Foo.m")

	require.Error(t, err, "non-zero exit must not be treated as formatted content")
	assert.Empty(t, out)

	var verr *domain.ValidatorError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Stderr, "bad flag")
}

func TestExecFormatter_Timeout(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "slow-format", "sleep 5\n")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := formatter.New().Format(ctx, script, "Foo.m")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
