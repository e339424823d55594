// dctopo generates data-center fabric topologies.
//
// Usage:
//
//	dctopo list
//	dctopo build --topo bcube,1,4 [-o fabric.yaml]
//	dctopo build --config run.yaml
//	dctopo stats --topo fattree,k=8,r=2
//	dctopo serve --addr :8080
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "dctopo",
		Usage:     "Generate BCube and Fat-Tree data-center topologies",
		Version:   fmt.Sprintf("%s (commit: %s)", version, commit),
		Writer:    stdout,
		ErrWriter: stderr,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"DCTOPO_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "log-dev",
				Usage:   "Human-readable development logging",
				EnvVars: []string{"DCTOPO_LOG_DEV"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML run configuration",
				EnvVars: []string{"DCTOPO_CONFIG"},
			},
		},

		Commands: []*cli.Command{
			listCommand(),
			buildCommand(),
			statsCommand(),
			serveCommand(),
		},
	}
}
