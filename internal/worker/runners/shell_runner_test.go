package runners

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"ScoringEngine/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newRunner(t *testing.T, binPath string) *ShellRunner {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skipf("sh not available: %v", err)
	}
	return NewShellRunner(ShellRunnerConfig{BinPath: binPath}, logger.Discard())
}

func TestRunCapturesOutput(t *testing.T) {
	runner := newRunner(t, "")

	result, err := runner.Run(context.Background(), "echo hello", 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, "hello\n", result.Output)
	require.False(t, result.TimedOut)
	require.Zero(t, result.ExitCode)
}

func TestRunMergesStderr(t *testing.T) {
	runner := newRunner(t, "")

	result, err := runner.Run(context.Background(), "echo out; echo err 1>&2", 5*time.Second)
	require.NoError(t, err)
	require.Contains(t, result.Output, "out\n")
	require.Contains(t, result.Output, "err\n")
}

func TestRunNonZeroExitIsNotAnError(t *testing.T) {
	runner := newRunner(t, "")

	result, err := runner.Run(context.Background(), "echo partial; exit 3", 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, "partial\n", result.Output)
	require.Equal(t, 3, result.ExitCode)
	require.False(t, result.TimedOut)
}

func TestRunTimeout(t *testing.T) {
	runner := newRunner(t, "")

	start := time.Now()
	result, err := runner.Run(context.Background(), "echo started; sleep 10", 200*time.Millisecond)
	require.NoError(t, err)
	require.True(t, result.TimedOut)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestRunTimeoutKillsBackgroundChildren(t *testing.T) {
	runner := newRunner(t, "")

	start := time.Now()
	result, err := runner.Run(context.Background(), "sleep 10 & sleep 10; wait", 200*time.Millisecond)
	require.NoError(t, err)
	require.True(t, result.TimedOut)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestRunCancelledContext(t *testing.T) {
	runner := newRunner(t, "")

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	result, err := runner.Run(ctx, "sleep 10", 5*time.Second)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, result.TimedOut)
}

func TestRunRejectsZeroTimeout(t *testing.T) {
	runner := newRunner(t, "")

	_, err := runner.Run(context.Background(), "true", 0)
	require.Error(t, err)
}

func TestRunResolvesHelpersFromBinPath(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "scoring_helper_check")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"helper $1\"\n"), 0o755))

	runner := newRunner(t, dir)

	result, err := runner.Run(context.Background(), "scoring_helper_check 10.0.0.1", 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, "helper 10.0.0.1\n", result.Output)
}

func TestWithPath(t *testing.T) {
	env := withPath([]string{"HOME=/root", "PATH=/usr/bin"}, "/opt/checks")
	require.Equal(t, []string{"HOME=/root", "PATH=/opt/checks" + string(os.PathListSeparator) + "/usr/bin"}, env)

	env = withPath([]string{"HOME=/root"}, "/opt/checks")
	require.Equal(t, []string{"HOME=/root", "PATH=/opt/checks"}, env)
}
