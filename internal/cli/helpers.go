package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/grasph/wrapitsh/internal/bundle"
	"github.com/grasph/wrapitsh/pkg/wrapit"
)

// expandPath expands environment variables within path.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	return os.ExpandEnv(path), nil
}

// storageDir determines the wrapitsh working directory.
func storageDir() (string, error) {
	if override := os.Getenv("WRAPITSH_HOME"); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home: %w", err)
	}
	return filepath.Join(home, ".wrapitsh"), nil
}

// toolchainDir is where the provisioned bundle lives.
func toolchainDir() (string, error) {
	root, err := storageDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "toolchain"), nil
}

func registryPath() (string, error) {
	root, err := storageDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "shims.json"), nil
}

// isRemotePath reports whether the provided path is an HTTP(S) URL.
func isRemotePath(path string) bool {
	u, err := url.Parse(path)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// verifyDigest computes a BLAKE3 digest for the file and compares it to
// the expected string. An empty expected value matches anything.
func verifyDigest(path, expected string) (bool, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return false, "", fmt.Errorf("hash file: %w", err)
	}

	actual := hasher.Sum(nil)
	actualHex := hex.EncodeToString(actual)

	expected = strings.TrimSpace(expected)
	if expected == "" {
		return true, actualHex, nil
	}

	return strings.EqualFold(expected, actualHex), actualHex, nil
}

// loadTool resolves the provisioned bundle manifest and constructs the
// tool around it.
func loadTool() (*wrapit.Tool, bundle.Manifest, error) {
	dir, err := toolchainDir()
	if err != nil {
		return nil, bundle.Manifest{}, err
	}
	manifest, err := bundle.Load(filepath.Join(dir, bundle.FileName))
	if err != nil {
		return nil, bundle.Manifest{}, err
	}
	tool, err := wrapit.New(manifest.Config(dir))
	if err != nil {
		return nil, bundle.Manifest{}, err
	}
	return tool, manifest, nil
}

// requireTool wraps loadTool with the standard user-facing failure
// message.
func requireTool(stderr io.Writer) (*wrapit.Tool, bundle.Manifest, error) {
	tool, manifest, err := loadTool()
	if err != nil {
		fmt.Fprintf(stderr, "no usable toolchain bundle: %v (run 'wrapitsh fetch' first)\n", err)
		return nil, bundle.Manifest{}, cliError{code: 2}
	}
	return tool, manifest, nil
}
