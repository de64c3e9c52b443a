// Package bundle reads the toolchain bundle manifest written by
// provisioning. The manifest is the single source of truth for where
// the vendored binary and its library directories live.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/grasph/wrapitsh/pkg/wrapit"
)

// FileName is the manifest name inside the toolchain directory.
const FileName = "bundle.yml"

type Manifest struct {
	Comment string  `yaml:"_comment,omitempty"`
	Tool    Tool    `yaml:"tool"`
	Deps    []Dep   `yaml:"deps,omitempty"`
	Runtime Runtime `yaml:"runtime,omitempty"`
}

type Tool struct {
	Name     string   `yaml:"name"`
	ExecPath string   `yaml:"exec_path"`
	LibDirs  []string `yaml:"lib_dirs,omitempty"`
	// Digest is the expected BLAKE3 digest of the binary, when the
	// bundle publisher provides one.
	Digest string `yaml:"digest,omitempty"`
}

type Dep struct {
	Name    string   `yaml:"name"`
	LibDirs []string `yaml:"lib_dirs,omitempty"`
}

type Runtime struct {
	LibDirs []string `yaml:"lib_dirs,omitempty"`
}

// Load parses the manifest at path.
func Load(path string) (Manifest, error) {
	var m Manifest

	raw, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read bundle manifest: %w", err)
	}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("decode bundle manifest: %w", err)
	}
	if m.Tool.ExecPath == "" {
		return m, fmt.Errorf("bundle manifest %s declares no tool exec_path", path)
	}
	return m, nil
}

// Config resolves the manifest into a locator configuration. Relative
// manifest paths are anchored at root, the directory holding the
// extracted bundle.
func (m Manifest) Config(root string) wrapit.Config {
	cfg := wrapit.Config{
		ExecPath:       resolve(root, m.Tool.ExecPath),
		LibDirs:        resolveAll(root, m.Tool.LibDirs),
		RuntimeLibDirs: resolveAll(root, m.Runtime.LibDirs),
	}
	for _, dep := range m.Deps {
		cfg.DepLibDirs = append(cfg.DepLibDirs, resolveAll(root, dep.LibDirs)...)
	}
	return cfg
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func resolveAll(root string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	resolved := make([]string, 0, len(paths))
	for _, path := range paths {
		resolved = append(resolved, resolve(root, path))
	}
	return resolved
}
