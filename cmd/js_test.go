package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runJS(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"js"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCleanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.js")
	require.NoError(t, os.WriteFile(path, []byte("var x = 1;\n"), 0o644))

	out, err := runJS(t, path)
	require.NoError(t, err)
	assert.Equal(t, "No major issues found!\n", out)
}

func TestFileWithManyIssues(t *testing.T) {
	// 25 lines of trailing whitespace, braces balanced.
	content := strings.Repeat("var x = 1;  \n", 25)
	path := filepath.Join(t.TempDir(), "messy.js")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := runJS(t, path)
	assert.ErrorIs(t, err, errIssuesFound)
	assert.True(t, strings.HasPrefix(out, "Found 25 issues:\n"))
	assert.Contains(t, out, "  ... and 5 more issues\n")
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 22)
}

func TestMissingInput(t *testing.T) {
	_, err := runJS(t, filepath.Join(t.TempDir(), "nope.js"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errIssuesFound)
}
