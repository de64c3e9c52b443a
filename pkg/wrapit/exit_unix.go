//go:build unix

package wrapit

import (
	"errors"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// exitStatus maps a child termination error to a shell-style exit
// status: 128+N for death by signal N, the child's own code otherwise.
func exitStatus(err error) (int, bool) {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, false
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok {
		status := unix.WaitStatus(ws)
		if status.Signaled() {
			return 128 + int(status.Signal()), true
		}
		return status.ExitStatus(), true
	}
	return exitErr.ExitCode(), true
}
