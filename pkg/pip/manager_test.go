package pip

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dj-ai/djfix/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeRunner records every invocation and fails the requirements listed in fail.
type fakeRunner struct {
	calls [][]string
	fail  map[string]bool
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	if len(args) > 0 && f.fail[args[len(args)-1]] {
		return errors.New("exit status 1")
	}
	return nil
}

func (f *fakeRunner) requirements() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c[len(c)-1])
	}
	return out
}

func TestInstallAll_OneInvocationPerPackageInOrder(t *testing.T) {
	runner := &fakeRunner{}
	in := NewInstaller(&Config{Python: "python3", Runner: runner})

	var out bytes.Buffer
	outcomes := in.InstallAll(context.Background(), &out)

	want := append(append([]string{}, CorePackages...), OptionalPackage)
	assert.Equal(t, want, runner.requirements())
	require.Len(t, outcomes, len(CorePackages)+1)
	for _, c := range runner.calls {
		assert.Equal(t, []string{"python3", "-m", "pip", "install"}, c[:4])
	}
	assert.True(t, outcomes[len(outcomes)-1].Optional)
	assert.Contains(t, out.String(), "✅ fastapi==0.104.1 installed successfully")
	assert.Contains(t, out.String(), "✅ Essentia installed successfully")
}

func TestInstallAll_FailureContinues(t *testing.T) {
	runner := &fakeRunner{fail: map[string]bool{"numpy": true}}
	in := NewInstaller(&Config{Python: "python3", Runner: runner})

	var out bytes.Buffer
	outcomes := in.InstallAll(context.Background(), &out)

	assert.Len(t, runner.calls, len(CorePackages)+1)
	assert.Contains(t, out.String(), "❌ Failed to install numpy")
	assert.Contains(t, out.String(), "✅ pandas installed successfully")

	var failed []string
	for _, o := range outcomes {
		if !o.OK() {
			failed = append(failed, o.Requirement)
			assert.ErrorIs(t, o.Err, ErrInstallFailed)
		}
	}
	assert.Equal(t, []string{"numpy"}, failed)
}

func TestRun_OptionalFailureIsWarningOnly(t *testing.T) {
	runner := &fakeRunner{fail: map[string]bool{OptionalPackage: true}}
	in := NewInstaller(&Config{Python: "python3", Runner: runner})

	var out bytes.Buffer
	res := in.Run(context.Background(), &out)

	assert.Equal(t, core.StatusSuccess, res.Status)
	assert.Contains(t, res.Detail, "essentia unavailable")
	assert.Contains(t, out.String(), "⚠️ Essentia installation failed - using fallback methods")
	assert.NotContains(t, out.String(), "❌")
}

func TestRun_CoreFailureReported(t *testing.T) {
	runner := &fakeRunner{fail: map[string]bool{"librosa": true, "pydub": true}}
	in := NewInstaller(&Config{Python: "python3", Runner: runner})

	res := in.Run(context.Background(), &bytes.Buffer{})

	assert.Equal(t, core.StatusFailed, res.Status)
	assert.Contains(t, res.Reason, "librosa, pydub")
}

func TestRun_NoInterpreterSkips(t *testing.T) {
	runner := &fakeRunner{}
	in := NewInstaller(&Config{Runner: runner})

	var out bytes.Buffer
	res := in.Run(context.Background(), &out)

	assert.Equal(t, core.StatusSkipped, res.Status)
	assert.Empty(t, runner.calls)
	assert.Contains(t, out.String(), "⚠️")
}

func TestInstall_EmptyRequirement(t *testing.T) {
	in := NewInstaller(&Config{Python: "python3", Runner: &fakeRunner{}})
	require.Error(t, in.Install(context.Background(), ""))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Essentia", displayName("essentia"))
	assert.Equal(t, "", displayName(""))
}
