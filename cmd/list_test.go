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

func createFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
	}
	return dir
}

func executeList(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := listCmd()
	cmd.SetArgs(args)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListCmd_Plain(t *testing.T) {
	dir := createFiles(t, "b.txt", "a.bin", "sub/c.log")

	out, _, err := executeList(t, dir)
	require.NoError(t, err)
	assert.Equal(t, "a.bin\nb.txt\n", out)
}

func TestListCmd_RecursiveWithExclusions(t *testing.T) {
	dir := createFiles(t, "b.txt", "a.bin", "sub/c.log", "sub/d.bin")

	out, _, err := executeList(t, dir, "-r", "-e", "*.txt", "--exclude", "*.log")
	require.NoError(t, err)
	assert.Equal(t, "a.bin\nsub/d.bin\n", out)
}

func TestListCmd_Debug(t *testing.T) {
	dir := createFiles(t, "b.txt", "a.bin")

	out, _, err := executeList(t, dir, "-f", "debug")
	require.NoError(t, err)
	assert.Equal(t, "[]string{\"a.bin\", \"b.txt\"}\n", out)
}

func TestListCmd_Table(t *testing.T) {
	dir := createFiles(t, "b.txt", "a.bin")

	out, _, err := executeList(t, dir, "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "FILE NAME")
	assert.Contains(t, out, "a.bin")
	assert.Contains(t, out, "b.txt")
	assert.Less(t, strings.Index(out, "a.bin"), strings.Index(out, "b.txt"))
}

func TestListCmd_MultipleDirs(t *testing.T) {
	first := createFiles(t, "one.bin")
	second := createFiles(t, "two.bin")
	missing := filepath.Join(second, "missing")

	out, stderr, err := executeList(t, first, missing, second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Fs(")

	assert.Equal(t, first+":\none.bin\n\n"+second+":\ntwo.bin\n", out)
	assert.Contains(t, stderr, missing+": Fs(")
}

func TestListCmd_InvalidFlags(t *testing.T) {
	dir := createFiles(t, "a.bin")

	_, _, err := executeList(t, dir, "-f", "yaml")
	assert.ErrorContains(t, err, "invalid format")

	_, _, err = executeList(t, dir, "-t", "0")
	assert.ErrorContains(t, err, "thread count")
}

func TestListCmd_InvalidExcludePattern(t *testing.T) {
	dir := createFiles(t, "a.bin")

	out, _, err := executeList(t, dir, "-e", "[")
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid exclude pattern: [")
	assert.Empty(t, out, "nothing should be listed with a malformed pattern")
}
