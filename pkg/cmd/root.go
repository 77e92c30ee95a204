package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/sqltidy/pkg/consts"
	"github.com/urfave/cli/v3"
)

// Version carries the build metadata stamped into the binary.
type Version struct {
	Version   string
	Commit    string
	Timestamp string
}

// Run creates and executes the main sqltidy CLI application with the given
// version and command-line arguments.
//
// Global flags:
//   - --config, -c: the sqltidy config file (default sqltidy.yaml). A missing
//     config file is not an error; built-in defaults apply.
//
// Example usage:
//
//	err := Run(ctx, Version{Version: "1.0.0"}, []string{"sqltidy", "fmt", "query.sql"})
func Run(ctx context.Context, version Version, args []string) error {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", version.Timestamp)
	}

	app := &cli.Command{
		Name:  "sqltidy",
		Usage: "A tool for re-indenting SQL and running it against ClickHouse",
		Description: `sqltidy is a CLI tool that re-indents SQL files using a small lexical
formatter. It never parses or validates the SQL, so any input can be
formatted; the exec command additionally runs statements against a
ClickHouse server.`,
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqltidy config file",
				Sources: cli.EnvVars("SQLTIDY_CONFIG"),
				Value:   consts.ConfigFile,
			},
		},
		Commands: []*cli.Command{
			fmtCmd(),
			execCmd(),
		},
	}

	return app.Run(ctx, args)
}
