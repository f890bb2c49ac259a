package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/stretchr/testify/require"
)

// captureLogs routes log entries into the returned builder for the duration
// of the test.
func captureLogs(t *testing.T) *strings.Builder {
	t.Helper()
	var b strings.Builder
	logs.SetInlineEncoder()
	logs.SetLogger(func(e logs.Entry) {
		fmt.Fprint(&b, e)
	})
	return &b
}

func TestRunRectangle(t *testing.T) {
	logged := captureLogs(t)
	out := filepath.Join(t.TempDir(), "rectangle.out")

	var stdout bytes.Buffer
	code := run([]string{"testdata/rectangle.txt", out, "10"}, &stdout)
	require.Equal(t, exitOK, code, stdout.String())
	require.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 12)
	require.Equal(t, "0;5;0 0;0;0 3;5;0", lines[0])
	require.Equal(t, "3;5;0 0;0;0 3;0;0", lines[1])
	for _, line := range lines[8:10] {
		require.Contains(t, line, ";10")
	}

	require.Contains(t, logged.String(), `"run_id"`)
	require.Contains(t, logged.String(), `"triangles":12`)
	require.Contains(t, logged.String(), `"faces":6`)
}

func TestRunStaircase(t *testing.T) {
	captureLogs(t)
	out := filepath.Join(t.TempDir(), "staircase.out")

	var stdout bytes.Buffer
	code := run([]string{"testdata/staircase.txt", out, "-2.5"}, &stdout)
	require.Equal(t, exitOK, code, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 20)
	require.Contains(t, string(data), ";-2.5")
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		code    int
		message string
	}{
		{
			name:    "no arguments",
			code:    exitUsage,
			message: usageMessage,
		},
		{
			name:    "too many arguments",
			args:    []string{"a", "b", "1", "d"},
			code:    exitUsage,
			message: usageMessage,
		},
		{
			name:    "missing input",
			args:    []string{"testdata/missing.txt", "out", "10"},
			code:    exitNotFound,
			message: "File testdata/missing.txt not found",
		},
		{
			name:    "length not a number",
			args:    []string{"testdata/rectangle.txt", "out", "ten"},
			code:    exitInvalidLength,
			message: "Extrusion value ten is not valid",
		},
		{
			name:    "length out of range",
			args:    []string{"testdata/rectangle.txt", "out", "1000001"},
			code:    exitInvalidLength,
			message: "Extrusion value 1000001 is not valid",
		},
		{
			name:    "zero length",
			args:    []string{"testdata/rectangle.txt", "out", "0"},
			code:    exitInvalidLength,
			message: "Extrusion value 0 is not valid",
		},
		{
			name: "malformed record",
			args: []string{"testdata/malformed.txt", "out", "10"},
			code: exitFormat,
		},
		{
			name: "not in a plane",
			args: []string{"testdata/skewed.txt", "out", "10"},
			code: exitGeometry,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logged := captureLogs(t)
			dir := t.TempDir()
			args := append([]string(nil), tt.args...)
			if len(args) == 3 {
				args[1] = filepath.Join(dir, args[1])
			}

			var stdout bytes.Buffer
			code := run(args, &stdout)
			require.Equal(t, tt.code, code)
			if tt.message != "" {
				require.Equal(t, tt.message+"\n", stdout.String())
			} else {
				require.NotEmpty(t, stdout.String())
			}
			require.Contains(t, logged.String(), fmt.Sprintf(`"exit_code":%d`, tt.code))

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			require.Empty(t, entries, "no output may be left behind")
		})
	}
}

func TestRunKeepsExistingOutputOnFailure(t *testing.T) {
	captureLogs(t)
	out := filepath.Join(t.TempDir(), "keep.out")
	require.NoError(t, os.WriteFile(out, []byte("previous\n"), 0o644))

	var stdout bytes.Buffer
	code := run([]string{"testdata/skewed.txt", out, "10"}, &stdout)
	require.Equal(t, exitGeometry, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "previous\n", string(data))
}

func TestRunOutputDirectoryMissing(t *testing.T) {
	captureLogs(t)
	out := filepath.Join(t.TempDir(), "missing", "out.txt")

	var stdout bytes.Buffer
	code := run([]string{"testdata/rectangle.txt", out, "10"}, &stdout)
	require.Equal(t, exitIO, code)
}

func TestParseLength(t *testing.T) {
	for _, s := range []string{"1", "-1", "0.001", "1000000", "-1000000", "2.50"} {
		_, err := parseLength(s)
		require.NoError(t, err, s)
	}
	for _, s := range []string{"", "x", "0", "0.000", "1000000.1", "1e7"} {
		_, err := parseLength(s)
		require.Error(t, err, s)
	}
}
