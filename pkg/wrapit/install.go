package wrapit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Install creates a shim named "wrapit" inside dir: a symlink to the
// vendored binary, or on darwin a launcher script that prepares SDKROOT
// and the library search path before exec'ing it. It returns 0 on
// success (including the idempotent re-install case) and 1 for
// user-correctable failures, which are described on stderr.
func (t *Tool) Install(dir string, stdout, stderr io.Writer) int {
	if dir == "" {
		dir = "."
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(stderr, "%s is not an existing directory\n", dir)
		return 1
	}

	execInfo, err := os.Stat(t.cfg.ExecPath)
	if err != nil {
		fmt.Fprintf(stderr, "%s not found, provision the toolchain first (run 'wrapitsh fetch')\n", t.cfg.ExecPath)
		return 1
	}

	dest := filepath.Join(dir, ShimName)
	if destInfo, err := os.Stat(dest); err == nil {
		if os.SameFile(destInfo, execInfo) {
			fmt.Fprintf(stdout, "%s already installed\n", dest)
			return 0
		}
		fmt.Fprintf(stderr, "%s already exists, remove it first\n", dest)
		return 1
	}

	if err := t.createShim(dest); err != nil {
		fmt.Fprintf(stderr, "%v, installation failed\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "installed %s into %s, try running '%s --help'\n", ShimName, dir, dest)
	return 0
}

// ShimKind reports the shim artifact created for the configured
// platform: "script" on darwin, "symlink" elsewhere.
func (t *Tool) ShimKind() string {
	if t.goos == "darwin" {
		return "script"
	}
	return "symlink"
}

func (t *Tool) createShim(dest string) error {
	if t.goos != "darwin" {
		if err := os.Symlink(t.cfg.ExecPath, dest); err != nil {
			return fmt.Errorf("create symlink: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(dest, []byte(t.launcherScript()), 0o644); err != nil {
		return fmt.Errorf("write launcher script: %w", err)
	}
	info, err := os.Stat(dest)
	if err != nil {
		return fmt.Errorf("stat launcher script: %w", err)
	}
	if err := os.Chmod(dest, info.Mode()|0o111); err != nil {
		return fmt.Errorf("make launcher executable: %w", err)
	}
	return nil
}

// launcherScript renders the darwin launcher. The script re-validates
// the binary and SDKROOT at run time because the toolchain may have
// been moved or upgraded since installation.
func (t *Tool) launcherScript() string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&b, "WRAPIT=%q\n", t.cfg.ExecPath)
	b.WriteString("if [ ! -x \"$WRAPIT\" ]; then\n")
	b.WriteString("    echo \"$WRAPIT not found, provision the toolchain again (run 'wrapitsh fetch')\" >&2\n")
	b.WriteString("    exit 1\n")
	b.WriteString("fi\n")
	b.WriteString("if [ -z \"$SDKROOT\" ]; then\n")
	b.WriteString("    SDKROOT=$(xcrun --sdk macosx --show-sdk-path) || exit 1\n")
	b.WriteString("fi\n")
	b.WriteString("if [ ! -d \"$SDKROOT\" ]; then\n")
	b.WriteString("    echo \"SDK root $SDKROOT does not exist\" >&2\n")
	b.WriteString("    exit 1\n")
	b.WriteString("fi\n")
	b.WriteString("export SDKROOT\n")
	fmt.Fprintf(&b, "export %s=%q\n", t.LibraryPathVar(), t.LibraryPathValue())
	b.WriteString("exec \"$WRAPIT\" \"$@\"\n")
	return b.String()
}
