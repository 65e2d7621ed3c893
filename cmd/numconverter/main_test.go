package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/numconverter/pkg/types"
)

type result struct {
	stdout string
	stderr string
	code   int
}

// run executes the CLI with args against an isolated home directory.
func run(t *testing.T, args ...string) result {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	code := execute(cmd)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "binary and hex",
			args: []string{"187", "2", "16"},
			want: "Base 02: 1011_1011\nBase 16: BB\n",
		},
		{
			name: "default bases",
			args: []string{"69"},
			want: "Base 02: 100_0101\nBase 08: 105\nBase 10: 69\nBase 16: 45\n",
		},
		{
			name: "bare",
			args: []string{"--bare", "187", "2", "16"},
			want: "1011_1011\nBB\n",
		},
		{
			name: "no separators",
			args: []string{"--no-sep", "187", "2"},
			want: "Base 02: 10111011\n",
		},
		{
			name: "separator length zero",
			args: []string{"-s", "0", "187", "2"},
			want: "Base 02: 10111011\n",
		},
		{
			name: "custom separator",
			args: []string{"--sep-char", ",", "-s", "3", "1234567", "10"},
			want: "Base 10: 1,234,567\n",
		},
		{
			name: "hex input",
			args: []string{"-b", "16", "ff", "2", "10"},
			want: "Base 02: 1111_1111\nBase 10: 255\n",
		},
		{
			name: "pad",
			args: []string{"-p", "8", "5", "2"},
			want: "Base 02: 0000_0101\n",
		},
		{
			name: "base 32",
			args: []string{"1023", "32"},
			want: "Base 32: VV\n",
		},
		{
			name: "silent",
			args: []string{"--silent", "187"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestConvertCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "target base out of range aborts all output",
			args:     []string{"187", "2", "16", "40"},
			wantCode: 4,
			wantMsg:  "input base error",
		},
		{
			name:     "target base not decimal",
			args:     []string{"187", "2", "x"},
			wantCode: 3,
			wantMsg:  "target base error",
		},
		{
			name:     "number not in input base",
			args:     []string{"-b", "2", "123"},
			wantCode: 2,
			wantMsg:  `could not convert "123" from base 2`,
		},
		{
			name:     "bad output format",
			args:     []string{"-o", "xml", "187"},
			wantCode: 5,
			wantMsg:  "unknown output format",
		},
		{
			name:     "bad separator",
			args:     []string{"--sep-char", "ab", "187"},
			wantCode: 5,
			wantMsg:  "exactly one character",
		},
		{
			name:     "missing number",
			args:     []string{},
			wantCode: 1,
			wantMsg:  "requires at least 1 arg",
		},
		{
			name:     "missing config file",
			args:     []string{"--config", "/nonexistent/numconverter.yaml", "187"},
			wantCode: 5,
			wantMsg:  "reading config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			assert.Equal(t, tt.wantCode, res.code)
			assert.Empty(t, res.stdout)
			assert.Contains(t, res.stderr, tt.wantMsg)
		})
	}
}

func TestConvertCommandJSON(t *testing.T) {
	res := run(t, "-o", "json", "187", "2", "16")
	require.Equal(t, 0, res.code, res.stderr)

	var got types.Report
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, "187", got.Input)
	assert.Equal(t, 10, got.InputBase)
	assert.Equal(t, []types.Conversion{
		{Base: 2, Digits: "10111011", Formatted: "1011_1011"},
		{Base: 16, Digits: "BB", Formatted: "BB"},
	}, got.Conversions)
}

func TestConvertCommandVerbose(t *testing.T) {
	res := run(t, "-v", "187", "16")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Base 16: BB\n", res.stdout)
	assert.Contains(t, res.stderr, "number: \"187\"")
	assert.Contains(t, res.stderr, "verbosity: 1")
}

func TestConvertCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numconverter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sep-char: \",\"\nsep-length: 3\nbases: [10, 16]\n"), 0o644))

	res := run(t, "--config", path, "1234567")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Base 10: 1,234,567\nBase 16: 12D,687\n", res.stdout)

	// Flags override the file.
	res = run(t, "--config", path, "-s", "4", "1234567", "10")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Base 10: 123,4567\n", res.stdout)
}

func TestConvertCommandEnv(t *testing.T) {
	t.Setenv("NUMCONVERTER_SEP_LENGTH", "2")
	t.Setenv("NUMCONVERTER_BARE", "true")

	res := run(t, "187", "2")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "10_11_10_11\n", res.stdout)
}

func TestHistoryCommand(t *testing.T) {
	dir := t.TempDir()

	res := run(t, "history", "--history-dir", dir)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "No conversions recorded.\n", res.stdout)

	res = run(t, "--history", "--history-dir", dir, "187", "2", "16")
	require.Equal(t, 0, res.code, res.stderr)
	res = run(t, "--history", "--silent", "--history-dir", dir, "69", "8")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, res.stdout)

	// Failed runs are not recorded.
	res = run(t, "--history", "--history-dir", dir, "187", "40")
	require.Equal(t, 4, res.code)

	res = run(t, "history", "--history-dir", dir)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "69 (base 10)\n    Base 08: 105\n")
	assert.Contains(t, res.stdout, "187 (base 10)\n    Base 02: 1011_1011\n    Base 16: BB\n")
	assert.Less(t, bytes.Index([]byte(res.stdout), []byte("69 (base 10)")), bytes.Index([]byte(res.stdout), []byte("187 (base 10)")))

	res = run(t, "history", "--history-dir", dir, "--limit", "1", "-o", "json")
	require.Equal(t, 0, res.code, res.stderr)
	var entries []types.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "69", entries[0].Input)

	res = run(t, "history", "--history-dir", dir, "--clear")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Cleared 2 entries.\n", res.stdout)

	res = run(t, "history", "--history-dir", dir, "-o", "json")
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, "[]", res.stdout)
}

func TestVersionCommand(t *testing.T) {
	res := run(t, "version")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "numconverter dev\n", res.stdout)
}
