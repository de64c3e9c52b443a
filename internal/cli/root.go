package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRootCmd creates the root wrapitsh command and attaches all
// subcommands.
func newRootCmd(downloader DownloadFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wrapitsh",
		Short:         "Installer and launcher shim for the vendored wrapit binary",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.ErrOrStderr(), "require subcommand (run 'wrapitsh help' for usage)")
			return cliError{code: 1}
		},
	}

	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newEnvCmd())
	cmd.AddCommand(newWhichCmd())
	cmd.AddCommand(newVerifyCmd())
	cmd.AddCommand(newFetchCmd(downloader))
	cmd.AddCommand(newShimsCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
