package runners

import (
	"context"
	"time"
)

// Execution is the outcome of one command. A timeout is an outcome, not an
// error: TimedOut is set and Output holds whatever was captured.
type Execution struct {
	Output   string
	ExitCode int
	TimedOut bool
	Duration time.Duration
}

type Runner interface {
	Run(ctx context.Context, command string, timeout time.Duration) (Execution, error)
}
