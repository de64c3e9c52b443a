package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPathEnv(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "out")
	t.Setenv("WRAPITSH_OUT", custom)

	got, err := expandPath("$WRAPITSH_OUT")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if got != custom {
		t.Fatalf("expected %q, got %q", custom, got)
	}
}

func TestExpandPathEmpty(t *testing.T) {
	got, err := expandPath("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestStorageDirOverride(t *testing.T) {
	root := t.TempDir()
	custom := filepath.Join(root, "state")
	t.Setenv("WRAPITSH_HOME", custom)
	t.Setenv("HOME", filepath.Join(root, "home"))

	got, err := storageDir()
	if err != nil {
		t.Fatalf("storageDir returned error: %v", err)
	}
	if got != custom {
		t.Fatalf("expected %q, got %q", custom, got)
	}
}

func TestStorageDirDefaultsToHome(t *testing.T) {
	root := t.TempDir()
	home := filepath.Join(root, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("failed to create fake home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("WRAPITSH_HOME", "")

	got, err := storageDir()
	if err != nil {
		t.Fatalf("storageDir returned error: %v", err)
	}

	want := filepath.Join(home, ".wrapitsh")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestIsRemotePath(t *testing.T) {
	if !isRemotePath("https://example.com/toolchain.tar.gz") {
		t.Fatal("expected https URL to be remote")
	}
	if !isRemotePath("http://example.com/toolchain.tar.gz") {
		t.Fatal("expected http URL to be remote")
	}
	if isRemotePath("/opt/toolchain.tar.gz") {
		t.Fatal("expected local path to not be remote")
	}
}

func TestVerifyDigestEmptyExpectedMatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("payload"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	match, digest, err := verifyDigest(path, "")
	if err != nil {
		t.Fatalf("verifyDigest returned error: %v", err)
	}
	if !match {
		t.Fatal("empty expected digest must match")
	}
	if len(digest) == 0 {
		t.Fatal("expected a digest value")
	}

	match, _, err = verifyDigest(path, digest)
	if err != nil {
		t.Fatalf("verifyDigest returned error: %v", err)
	}
	if !match {
		t.Fatal("expected the computed digest to match itself")
	}

	match, _, err = verifyDigest(path, "deadbeef")
	if err != nil {
		t.Fatalf("verifyDigest returned error: %v", err)
	}
	if match {
		t.Fatal("expected a mismatch for a wrong digest")
	}
}
