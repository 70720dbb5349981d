//go:build unix

package runners

import (
	"os/exec"
	"syscall"
)

// configureProcess starts the shell in its own process group and kills the
// whole group on cancellation, so helpers spawned by the command die too.
func configureProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
