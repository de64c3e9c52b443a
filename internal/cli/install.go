package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/grasph/wrapitsh/internal/registry"
	"github.com/grasph/wrapitsh/pkg/wrapit"
)

// newInstallCmd wires the `install` command that places a wrapit shim
// into a directory.
func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install [dir]",
		Short: "Install a wrapit shim into a directory (default: current directory)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			dir := "."
			if len(args) == 1 {
				expanded, err := expandPath(args[0])
				if err != nil {
					fmt.Fprintf(stderr, "failed to expand destination path: %v\n", err)
					return cliError{code: 5}
				}
				dir = expanded
			}

			tool, _, err := requireTool(stderr)
			if err != nil {
				return err
			}

			if code := tool.Install(dir, stdout, stderr); code != 0 {
				return cliError{code: code}
			}

			recordShim(tool, dir, stderr)
			return nil
		},
	}
}

// recordShim remembers the installed shim in the registry. Bookkeeping
// failures are warnings: the shim itself is already in place.
func recordShim(tool *wrapit.Tool, dir string, stderr io.Writer) {
	path, err := registryPath()
	if err != nil {
		fmt.Fprintf(stderr, "warning: failed to locate shim registry: %v\n", err)
		return
	}
	store, err := registry.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "warning: failed to load shim registry: %v\n", err)
		return
	}

	shimPath, err := filepath.Abs(filepath.Join(dir, wrapit.ShimName))
	if err != nil {
		fmt.Fprintf(stderr, "warning: failed to resolve shim path: %v\n", err)
		return
	}
	store.Upsert(registry.Entry{
		ShimPath:    shimPath,
		Target:      tool.ExecutablePath(),
		Kind:        tool.ShimKind(),
		InstalledAt: time.Now().UTC(),
	})
	if err := store.Save(path); err != nil {
		fmt.Fprintf(stderr, "warning: failed to save shim registry: %v\n", err)
	}
}
