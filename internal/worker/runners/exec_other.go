//go:build !unix

package runners

import "os/exec"

func configureProcess(*exec.Cmd) {}
