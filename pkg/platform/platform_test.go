package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_ReportsRuntime(t *testing.T) {
	p := Detect()
	assert.Equal(t, runtime.GOOS, p.OS)
	assert.Equal(t, runtime.GOARCH, p.Arch)
	if len(p.Pythons) > 0 {
		assert.Equal(t, p.Pythons[0], p.Preferred)
	} else {
		assert.Empty(t, p.Preferred)
	}
	assert.Contains(t, p.String(), p.OS)
}

func TestResolvePython_PrefersConfigured(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit check is unix-only")
	}
	dir := t.TempDir()
	fake := filepath.Join(dir, "mypython")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	got, err := ResolvePython(&Platform{Preferred: "python3"}, fake)
	require.NoError(t, err)
	assert.Equal(t, fake, got)
}

func TestResolvePython_MissingConfigured(t *testing.T) {
	_, err := ResolvePython(&Platform{Preferred: "python3"}, "/nonexistent/djfix-python")
	require.ErrorIs(t, err, ErrNoInterpreter)
}

func TestResolvePython_FallsBackToPreferred(t *testing.T) {
	got, err := ResolvePython(&Platform{Preferred: "python3"}, "")
	require.NoError(t, err)
	assert.Equal(t, "python3", got)
}

func TestResolvePython_NothingAvailable(t *testing.T) {
	_, err := ResolvePython(&Platform{}, "")
	require.ErrorIs(t, err, ErrNoInterpreter)

	_, err = ResolvePython(nil, "")
	require.ErrorIs(t, err, ErrNoInterpreter)
}
