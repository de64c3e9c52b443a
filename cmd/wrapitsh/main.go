// Binary main package for the wrapitsh command-line application.
package main

import (
	"os"

	"github.com/grasph/wrapitsh/internal/cli"
	"github.com/grasph/wrapitsh/pkg/artifact"
)

// Version reports the build-time version string injected by ldflags.
var (
	Version = "0.0.0"
)

func main() {
	cli.Version = Version
	code := cli.Run(os.Args[1:], os.Stdout, os.Stderr, artifact.Download)
	os.Exit(code)
}
