package runners

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultShell = "/bin/sh"
	// waitDelay bounds how long Wait blocks on output pipes after the
	// process group was killed.
	waitDelay = 2 * time.Second
)

type ShellRunnerConfig struct {
	// Shell defaults to /bin/sh.
	Shell string
	// BinPath is prepended to PATH so check helper scripts resolve by name.
	BinPath string
}

// ShellRunner runs command strings through "sh -c" with stderr folded into
// stdout.
type ShellRunner struct {
	shell  string
	env    []string
	logger *slog.Logger
}

func NewShellRunner(cfg ShellRunnerConfig, logger *slog.Logger) *ShellRunner {
	if logger == nil {
		logger = slog.Default()
	}

	shell := cfg.Shell
	if shell == "" {
		shell = defaultShell
	}

	var env []string
	if cfg.BinPath != "" {
		env = withPath(os.Environ(), cfg.BinPath)
	}

	return &ShellRunner{
		shell:  shell,
		env:    env,
		logger: logger.With("component", "shell-runner"),
	}
}

// withPath returns environ with dir prepended to PATH.
func withPath(environ []string, dir string) []string {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	env := make([]string, 0, len(environ)+1)
	found := false
	for _, kv := range environ {
		if value, ok := strings.CutPrefix(kv, "PATH="); ok {
			kv = "PATH=" + dir + string(os.PathListSeparator) + value
			found = true
		}
		env = append(env, kv)
	}
	if !found {
		env = append(env, "PATH="+dir)
	}
	return env
}

// Run executes command and waits for it at most timeout. When the timeout
// fires the whole process group is killed and the execution is reported as
// timed out. Cancelling ctx kills the command and returns ctx.Err().
func (r *ShellRunner) Run(ctx context.Context, command string, timeout time.Duration) (Execution, error) {
	if timeout <= 0 {
		return Execution{}, fmt.Errorf("invalid timeout %s", timeout)
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.shell, "-c", command)
	cmd.Env = r.env
	cmd.WaitDelay = waitDelay
	configureProcess(cmd)

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	start := time.Now()
	err := cmd.Run()
	result := Execution{
		Output:   buf.String(),
		Duration: time.Since(start),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		r.logger.Debug("command timed out", "timeout", timeout, "duration", result.Duration)
		return result, nil
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return result, fmt.Errorf("run %s: %w", r.shell, err)
	}

	return result, nil
}
