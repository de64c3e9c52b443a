package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// provisionFakeToolchain writes a bundle under a fresh WRAPITSH_HOME
// and returns the toolchain directory. An empty manifest installs the
// default fake bundle.
func provisionFakeToolchain(t *testing.T, manifestYAML string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skip: wrapitsh does not support windows")
	}

	home := t.TempDir()
	t.Setenv("WRAPITSH_HOME", home)

	dir := filepath.Join(home, "toolchain")
	if err := os.MkdirAll(filepath.Join(dir, "bin"), 0o755); err != nil {
		t.Fatalf("failed to create toolchain layout: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bin", "wrapit"), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake binary: %v", err)
	}

	if manifestYAML == "" {
		manifestYAML = "tool:\n  name: wrapit\n  exec_path: bin/wrapit\n  lib_dirs:\n    - lib\n"
	}
	if err := os.WriteFile(filepath.Join(dir, "bundle.yml"), []byte(manifestYAML), 0o644); err != nil {
		t.Fatalf("failed to write bundle manifest: %v", err)
	}
	return dir
}
