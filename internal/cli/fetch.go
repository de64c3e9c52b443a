package cli

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grasph/wrapitsh/internal/bundle"
	"github.com/grasph/wrapitsh/pkg/artifact"
)

// newFetchCmd wires the `fetch` command that provisions the wrapit
// toolchain bundle from a local or remote archive.
func newFetchCmd(downloader DownloadFunc) *cobra.Command {
	var digest string

	cmd := &cobra.Command{
		Use:   "fetch <url|path>",
		Short: "Provision the wrapit toolchain bundle from an archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			if len(args) == 0 {
				fmt.Fprintln(stderr, "require archive path or URL argument")
				return cliError{code: 1}
			}
			if len(args) > 1 {
				fmt.Fprintln(stderr, "unexpected arguments")
				return cliError{code: 1}
			}

			source := args[0]
			archivePath := source
			if isRemotePath(source) {
				if downloader == nil {
					fmt.Fprintln(stderr, "fetch requires a downloader")
					return cliError{code: 5}
				}
				tmpDir, err := os.MkdirTemp("", "wrapitsh-fetch-*")
				if err != nil {
					fmt.Fprintf(stderr, "failed to create temp directory: %v\n", err)
					return cliError{code: 5}
				}
				defer os.RemoveAll(tmpDir)

				archivePath = filepath.Join(tmpDir, remoteFileName(source))
				if _, err := downloader(source, archivePath); err != nil {
					fmt.Fprintf(stderr, "failed to download %s: %v\n", source, err)
					return cliError{code: 4}
				}
			} else {
				expanded, err := expandPath(source)
				if err != nil {
					fmt.Fprintf(stderr, "failed to expand archive path: %v\n", err)
					return cliError{code: 5}
				}
				if _, err := os.Stat(expanded); err != nil {
					fmt.Fprintln(stderr, "not found path")
					return cliError{code: 2}
				}
				archivePath = expanded
			}

			if digest != "" {
				match, actual, err := verifyDigest(archivePath, digest)
				if err != nil {
					fmt.Fprintf(stderr, "failed to verify archive digest: %v\n", err)
					return cliError{code: 5}
				}
				if !match {
					fmt.Fprintf(stderr, "archive digest mismatch (expected %s, got %s)\n", digest, actual)
					return cliError{code: 3}
				}
			}

			encoding, err := artifact.DetectEncoding(filepath.Base(archivePath))
			if err != nil {
				fmt.Fprintf(stderr, "%v\n", err)
				return cliError{code: 1}
			}

			dest, err := toolchainDir()
			if err != nil {
				fmt.Fprintf(stderr, "failed to determine toolchain directory: %v\n", err)
				return cliError{code: 5}
			}
			if err := artifact.Unpack(encoding, archivePath, dest); err != nil {
				fmt.Fprintf(stderr, "failed to unpack archive: %v\n", err)
				return cliError{code: 5}
			}

			manifest, err := bundle.Load(filepath.Join(dest, bundle.FileName))
			if err != nil {
				fmt.Fprintf(stderr, "unpacked bundle is unusable: %v\n", err)
				return cliError{code: 3}
			}

			fmt.Fprintf(stdout, "provisioned %s toolchain at %s\n", manifest.Tool.Name, dest)
			fmt.Fprintln(stdout, "run 'wrapitsh install <dir>' to place a shim on your PATH")
			return nil
		},
	}

	cmd.Flags().StringVar(&digest, "digest", "", "expected BLAKE3 digest of the archive")
	return cmd
}

// remoteFileName derives a local file name from a download URL so the
// encoding can be inferred from its extension.
func remoteFileName(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "artifact"
	}
	base := path.Base(u.Path)
	if base == "/" || base == "." || base == "" {
		return "artifact"
	}
	return base
}
