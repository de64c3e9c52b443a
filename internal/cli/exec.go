package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grasph/wrapitsh/pkg/wrapit"
)

// newRunCmd wires the `run` command that launches the vendored binary
// with the prepared environment. Tool arguments go after `--`; keyword
// options are given as repeatable --opt name=value flags and rendered
// ahead of the positionals.
func newRunCmd() *cobra.Command {
	var rawOpts []string

	cmd := &cobra.Command{
		Use:   "run [--opt name=value]... [--] [args...]",
		Short: "Run the vendored wrapit binary with the prepared environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			opts, err := parseOptions(rawOpts)
			if err != nil {
				fmt.Fprintf(stderr, "%v\n", err)
				return cliError{code: 1}
			}

			tool, _, err := requireTool(stderr)
			if err != nil {
				return err
			}

			status, err := tool.Run(args, opts, wrapit.IO{
				Stdin:  cmd.InOrStdin(),
				Stdout: stdout,
				Stderr: stderr,
			})
			if err != nil {
				fmt.Fprintf(stderr, "%v\n", err)
				return cliError{code: 5}
			}
			if status != 0 {
				return cliError{code: status}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&rawOpts, "opt", nil, "keyword option rendered as a flag (name=value; bare names mean true)")
	return cmd
}

// parseOptions converts --opt values into ordered keyword options.
// "true" and "false" become booleans so presence flags render without
// an =value suffix.
func parseOptions(raw []string) ([]wrapit.Option, error) {
	opts := make([]wrapit.Option, 0, len(raw))
	for _, item := range raw {
		name, value, found := strings.Cut(item, "=")
		if name == "" {
			return nil, fmt.Errorf("invalid option %q (expected name=value)", item)
		}
		if !found {
			opts = append(opts, wrapit.Option{Name: name, Value: true})
			continue
		}
		switch value {
		case "true":
			opts = append(opts, wrapit.Option{Name: name, Value: true})
		case "false":
			opts = append(opts, wrapit.Option{Name: name, Value: false})
		default:
			opts = append(opts, wrapit.Option{Name: name, Value: value})
		}
	}
	return opts, nil
}
