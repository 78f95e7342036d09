package manifest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dj-ai/djfix/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(string(data), "\n")
}

func TestWriter_ExactLines(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)

	var out bytes.Buffer
	res := w.Run(context.Background(), &out)

	require.Equal(t, core.StatusSuccess, res.Status)
	lines := readLines(t, w.Path())
	assert.Len(t, lines, 11)
	assert.Equal(t, Lines(), lines)
	assert.Equal(t, "fastapi==0.104.1", lines[0])
	assert.Equal(t, "requests", lines[10])
	assert.Contains(t, out.String(), "✅ Created requirements_fixed.txt with compatible versions")
}

func TestWriter_IdempotentOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale-line\n", 40)), 0o644))

	w := NewWriter(dir, nil)
	for i := 0; i < 3; i++ {
		require.NoError(t, w.Write())
	}

	assert.Equal(t, Lines(), readLines(t, path))
}

func TestWriter_FailureReported(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "nope"), nil)

	var out bytes.Buffer
	res := w.Run(context.Background(), &out)

	assert.Equal(t, core.StatusFailed, res.Status)
	assert.Contains(t, out.String(), "❌ Error creating requirements file")
}

func TestLines_ReturnsCopy(t *testing.T) {
	l := Lines()
	l[0] = "mutated"
	assert.Equal(t, "fastapi==0.104.1", Lines()[0])
}
