package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newWhichCmd prints the resolved path of the vendored binary.
func newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which",
		Short: "Print the resolved path of the vendored wrapit binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			tool, _, err := requireTool(stderr)
			if err != nil {
				return err
			}

			fmt.Fprintln(stdout, tool.ExecutablePath())
			if _, err := os.Stat(tool.ExecutablePath()); err != nil {
				fmt.Fprintf(stderr, "warning: %s is not present on disk\n", tool.ExecutablePath())
			}
			return nil
		},
	}
}
