package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PORTFOLIO_LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))

	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "portfolio version dev\n", out)
}

func TestCheckCommand_EmbeddedDataset(t *testing.T) {
	out, err := execute(t, "check")

	require.NoError(t, err)
	assert.Contains(t, out, "dataset ok: 21 certifications")
}

func TestCheckCommand_ReportsProblems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	data := `profile:
  name: Test
  initials: T
  headline: Engineer
  email: test@example.com
experiences: []
certifications:
  - name: Backwards
    issuer: Example
    issued: Mar 2024
    expires: Jan 2024
skills: []
skill_categories: []
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("PORTFOLIO_DATA_PATH", path)

	out, err := execute(t, "check")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 data-quality problem(s) found")
	assert.Contains(t, out, `"Backwards"`)
}

func TestBuildCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")

	_, err := execute(t, "build", "--out", dir)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "index.html"))
	assert.FileExists(t, filepath.Join(dir, "static", "app.css"))
}
