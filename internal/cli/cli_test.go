package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "djfix version "+version)
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "fastapi==0.104.1")
	assert.Contains(t, out, "essentia (optional)")
	assert.Contains(t, out, "requirements_fixed.txt:")
	assert.Contains(t, out, "ffmpeg available:")
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "unexpected")
	require.Error(t, err)
}

func TestInitConfig_FlagsOverride(t *testing.T) {
	dir := t.TempDir()
	cfgFile = ""
	workDir = dir
	python = "python3.11"
	debug = true
	t.Cleanup(func() {
		workDir, python, debug = "", "", false
	})

	initConfig()

	assert.Equal(t, dir, config.WorkDir)
	assert.Equal(t, "python3.11", config.Python)
	assert.True(t, config.Debug)
}
