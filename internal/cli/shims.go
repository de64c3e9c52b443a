package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grasph/wrapitsh/internal/registry"
)

// newShimsCmd lists shims recorded at install time.
func newShimsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shims",
		Short: "List shims installed by wrapitsh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			path, err := registryPath()
			if err != nil {
				fmt.Fprintf(stderr, "failed to locate shim registry: %v\n", err)
				return cliError{code: 5}
			}
			store, err := registry.Load(path)
			if err != nil {
				fmt.Fprintf(stderr, "failed to load shim registry: %v\n", err)
				return cliError{code: 5}
			}

			if len(store.Entries) == 0 {
				fmt.Fprintln(stdout, "no shims recorded")
				return nil
			}
			for _, entry := range store.Entries {
				marker := ""
				if _, err := os.Lstat(entry.ShimPath); err != nil {
					marker = " (missing)"
				}
				fmt.Fprintf(stdout, "%s -> %s [%s]%s\n", entry.ShimPath, entry.Target, entry.Kind, marker)
			}
			return nil
		},
	}

	cmd.AddCommand(newShimsForgetCmd())
	return cmd
}

// newShimsForgetCmd drops a registry record. The shim file itself is
// left untouched; wrapitsh never deletes user files.
func newShimsForgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <path>",
		Short: "Forget a recorded shim without touching the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			shimPath, err := filepath.Abs(args[0])
			if err != nil {
				fmt.Fprintf(stderr, "failed to resolve shim path: %v\n", err)
				return cliError{code: 5}
			}

			path, err := registryPath()
			if err != nil {
				fmt.Fprintf(stderr, "failed to locate shim registry: %v\n", err)
				return cliError{code: 5}
			}
			store, err := registry.Load(path)
			if err != nil {
				fmt.Fprintf(stderr, "failed to load shim registry: %v\n", err)
				return cliError{code: 5}
			}

			if _, ok := store.RemoveByPath(shimPath); !ok {
				fmt.Fprintf(stderr, "no shim recorded at %s\n", shimPath)
				return cliError{code: 1}
			}
			if err := store.Save(path); err != nil {
				fmt.Fprintf(stderr, "failed to save shim registry: %v\n", err)
				return cliError{code: 5}
			}
			fmt.Fprintf(stdout, "forgot shim %s\n", shimPath)
			return nil
		},
	}
}
