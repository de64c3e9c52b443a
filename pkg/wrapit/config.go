// Package wrapit locates, installs and launches the vendored wrapit
// binary shipped by the toolchain bundle.
package wrapit

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ShimName is the file name used for installed shims; it matches the
// vendored binary's own name.
const ShimName = "wrapit"

// ErrUnsupportedPlatform is returned by New when no toolchain artifact
// exists for the configured operating system.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Config describes an installed toolchain bundle. It is supplied by the
// provisioning layer (see internal/bundle) rather than computed here,
// so the locator can be exercised with fake paths.
type Config struct {
	// ExecPath is the absolute path of the vendored wrapit binary.
	ExecPath string
	// LibDirs are the tool's own library directories. They take
	// precedence over every other search-path entry.
	LibDirs []string
	// DepLibDirs are library directories declared by bundled
	// dependencies, such as the bundled crypto library.
	DepLibDirs []string
	// RuntimeLibDirs are the host runtime's shared library directories.
	RuntimeLibDirs []string
	// GOOS overrides the operating system identifier; empty means
	// runtime.GOOS.
	GOOS string
}

// Tool exposes the locator, installer and invoker for one resolved
// toolchain. Construct it with New.
type Tool struct {
	cfg  Config
	goos string
}

// New validates cfg against the supported platform set and returns the
// resolved tool. Windows is rejected outright: the upstream artifact
// does not ship for it.
func New(cfg Config) (*Tool, error) {
	goos := cfg.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "linux", "darwin", "freebsd":
	case "windows":
		return nil, fmt.Errorf("%w: wrapit is not available on Windows", ErrUnsupportedPlatform)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
	return &Tool{cfg: cfg, goos: goos}, nil
}

// ExecutablePath returns the resolved path of the vendored binary.
func (t *Tool) ExecutablePath() string {
	return t.cfg.ExecPath
}

// LibraryPathVar returns the name of the dynamic-linker search-path
// environment variable for the configured operating system.
func (t *Tool) LibraryPathVar() string {
	if t.goos == "darwin" {
		return "DYLD_FALLBACK_LIBRARY_PATH"
	}
	return "LD_LIBRARY_PATH"
}

// LibraryPathValue returns the colon-joined search-path list. The
// tool's own directories come first so they win dynamic-loader
// resolution; configuration order is preserved verbatim.
func (t *Tool) LibraryPathValue() string {
	dirs := make([]string, 0, len(t.cfg.LibDirs)+len(t.cfg.DepLibDirs)+len(t.cfg.RuntimeLibDirs))
	dirs = append(dirs, t.cfg.LibDirs...)
	dirs = append(dirs, t.cfg.DepLibDirs...)
	dirs = append(dirs, t.cfg.RuntimeLibDirs...)
	return strings.Join(dirs, ":")
}
