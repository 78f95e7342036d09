package platform

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	r := NewExecRunner(nil)

	require.NoError(t, r.Run(context.Background(), "sh", "-c", "exit 0"))

	err := r.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	err = r.Run(context.Background(), "djfix-no-such-binary")
	require.Error(t, err)
}

func TestLastLines(t *testing.T) {
	assert.Equal(t, "c", lastLines("a\nb\nc\n", 1))
	assert.Equal(t, "b\nc", lastLines("a\nb\nc", 2))
	assert.Equal(t, "", lastLines("", 3))
}
