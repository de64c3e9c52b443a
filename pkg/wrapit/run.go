package wrapit

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// IO carries the child process streams. Nil fields fall back to the
// parent's standard streams.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the vendored binary with the rendered option flags
// followed by args, blocking until the child exits. The child inherits
// the parent environment with the library search-path variable set to
// the locator's value, prepended to any pre-existing value so user
// entries are kept but never win. On darwin SDKROOT is validated or
// discovered via xcrun; a failed discovery is an error, not a status.
//
// The returned status is the child's exit code, or 128+N when the
// child died from signal N.
func (t *Tool) Run(args []string, opts []Option, streams IO) (int, error) {
	env, err := t.childEnv(os.Environ(), os.Getenv)
	if err != nil {
		return 0, err
	}

	argv := append(Flags(opts), args...)
	cmd := exec.Command(t.cfg.ExecPath, argv...)
	cmd.Env = env
	cmd.Stdin = streams.Stdin
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		if status, ok := exitStatus(err); ok {
			return status, nil
		}
		return 0, fmt.Errorf("run %s: %w", t.cfg.ExecPath, err)
	}
	return 0, nil
}

// childEnv builds the child environment from the parent's. environ and
// getenv are parameters so the assembly rules are testable without
// mutating the process environment.
func (t *Tool) childEnv(environ []string, getenv func(string) string) ([]string, error) {
	libVar := t.LibraryPathVar()
	libValue := t.LibraryPathValue()
	if existing := getenv(libVar); existing != "" {
		libValue = libValue + ":" + existing
	}

	env := make([]string, 0, len(environ)+2)
	for _, kv := range environ {
		if strings.HasPrefix(kv, libVar+"=") {
			continue
		}
		if t.goos == "darwin" && strings.HasPrefix(kv, "SDKROOT=") {
			continue
		}
		env = append(env, kv)
	}
	env = append(env, libVar+"="+libValue)

	if t.goos == "darwin" {
		sdkroot, err := ensureSDKRoot(getenv("SDKROOT"))
		if err != nil {
			return nil, err
		}
		env = append(env, "SDKROOT="+sdkroot)
	}
	return env, nil
}
