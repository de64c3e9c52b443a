package cli

import (
	"bytes"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func libraryPathVarForHost() string {
	if runtime.GOOS == "darwin" {
		return "DYLD_FALLBACK_LIBRARY_PATH"
	}
	return "LD_LIBRARY_PATH"
}

func TestEnvCommand(t *testing.T) {
	toolchain := provisionFakeToolchain(t, "")

	var stdout, stderr bytes.Buffer
	exitCode := Run([]string{"env"}, &stdout, &stderr, nil)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr=%q)", exitCode, stderr.String())
	}

	want := libraryPathVarForHost() + "=" + filepath.Join(toolchain, "lib") + "\n"
	if stdout.String() != want {
		t.Fatalf("expected %q, got %q", want, stdout.String())
	}
}

func TestEnvCommand_ShellFormat(t *testing.T) {
	provisionFakeToolchain(t, "")

	var stdout, stderr bytes.Buffer
	exitCode := Run([]string{"env", "--sh"}, &stdout, &stderr, nil)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr=%q)", exitCode, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "export "+libraryPathVarForHost()+"=") {
		t.Fatalf("expected an export line, got %q", stdout.String())
	}
}

func TestWhichCommand(t *testing.T) {
	toolchain := provisionFakeToolchain(t, "")

	var stdout, stderr bytes.Buffer
	exitCode := Run([]string{"which"}, &stdout, &stderr, nil)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr=%q)", exitCode, stderr.String())
	}
	want := filepath.Join(toolchain, "bin", "wrapit") + "\n"
	if stdout.String() != want {
		t.Fatalf("expected %q, got %q", want, stdout.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("expected no warning for a present binary, got %q", stderr.String())
	}
}
