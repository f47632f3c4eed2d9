package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"enginekit/internal/ident"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestNowCommand(t *testing.T) {
	out := runCommand(t, "now")
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6} \(uptime \d+\.\d{9}s\)`, out)
}

func TestStackCommand(t *testing.T) {
	out := runCommand(t, "stack")
	assert.True(t, strings.HasPrefix(out, "1: "), "expected numbered frames: %q", out)
	assert.Contains(t, out, " at ")
}

func TestUUIDCommand(t *testing.T) {
	out := runCommand(t, "uuid")
	_, err := ident.FromString(strings.TrimSpace(out))
	assert.NoError(t, err)
}

func TestHexdumpCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, os.WriteFile(path, []byte("0123456789abcdef"), 0o644))

	out := runCommand(t, "hexdump", path)
	assert.Contains(t, out, "00000000  30 31 32 ")
	assert.Contains(t, out, "| 0123456789abcdef")
}

func TestHexdumpCommand_OffsetPastEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, os.WriteFile(path, []byte("xy"), 0o644))

	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"hexdump", "--offset", "10", path})
	assert.Error(t, root.Execute())
}
