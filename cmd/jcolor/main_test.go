package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunColorized(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, `{"key": [Object]}`)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "{\n  \"\x1b[32mkey\x1b[0m\": \x1b[32m[Object]\x1b[0m\n}\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunNoColor(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, "--color=never", `{"a": 5n, "b": undefined}`)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "{\n  \"a\": 5,\n  \"b\": null\n}\n", stdout)
}

func TestRunAutoColorOnPipe(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, "--color", "auto", `[true]`)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "[\n  true\n]\n", stdout)
}

func TestRunRepair(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, "-r", `{"a": [Array], "t": 2024-01-02T03:04:05.006Z}`)
	require.Equal(t, exitOK, code)
	assert.Equal(t, `{"a":"[Array]","t":"2024-01-02T03:04:05.006Z"}`, strings.TrimSpace(stdout))
	assert.NotContains(t, stdout, "\x1b[")
}

func TestRunControlCharacters(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "--color=never", `{"s":"\u0001"}`)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "{\n  \"s\": \x01\n}\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunParseError(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, `{"key": }`)
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "Error processing JSON: "), stderr)
	assert.True(t, strings.HasSuffix(stderr, "\n"))

	code, _, stderr = runCLI(t, "--repair", `[Foo1]`)
	assert.Equal(t, exitError, code)
	assert.True(t, strings.HasPrefix(stderr, "Error processing JSON: "), stderr)
}

func TestRunUsageErrors(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"no argument":    nil,
		"two arguments":  {`{}`, `[]`},
		"unknown flag":   {"--bogus", `{}`},
		"bad color mode": {"--color=rainbow", `{}`},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout)
			assert.True(t, strings.HasPrefix(stderr, "jcolor: "), stderr)
			assert.Contains(t, stderr, "Usage: jcolor")
		})
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "--help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Usage: jcolor")
	assert.Contains(t, stdout, "--repair")
	assert.Empty(t, stderr)

	code, stdout, _ = runCLI(t, "-V")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "jcolor "+version+"\n", stdout)
}

func TestRunDebugLogsRules(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "--debug", "--color=never", `{"a": 7n}`)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "{\n  \"a\": 7\n}\n", stdout)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "rule=bigint")

	_, _, stderr = runCLI(t, "--color=never", `{"a": 7n}`)
	assert.Empty(t, stderr)
}
