//go:build !unix

package wrapit

import (
	"errors"
	"os/exec"
)

// exitStatus reports the plain exit code on systems without wait
// statuses; New rejects those platforms before a child can be spawned.
func exitStatus(err error) (int, bool) {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, false
	}
	return exitErr.ExitCode(), true
}
