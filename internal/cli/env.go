package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newEnvCmd prints the dynamic-linker search path the shim injects, so
// users can source it into their own environment.
func newEnvCmd() *cobra.Command {
	var shell bool

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the library search-path variable for the toolchain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			tool, _, err := requireTool(stderr)
			if err != nil {
				return err
			}

			if shell {
				fmt.Fprintf(stdout, "export %s=%q\n", tool.LibraryPathVar(), tool.LibraryPathValue())
				return nil
			}
			fmt.Fprintf(stdout, "%s=%s\n", tool.LibraryPathVar(), tool.LibraryPathValue())
			return nil
		},
	}

	cmd.Flags().BoolVar(&shell, "sh", false, "emit a shell export line")
	return cmd
}
