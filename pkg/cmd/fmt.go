package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqltidy/pkg/consts"
	"github.com/pseudomuto/sqltidy/pkg/sqlformat"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates a CLI command for re-indenting SQL files. This provides
// goimports-like behavior for SQL: format individual files, entire directory
// trees, or stdin.
//
// The command supports two output modes:
//   - Stdout mode (default): formatted SQL is written to standard output
//   - Write mode (-w flag): files are modified in-place with formatted content
//
// Path handling:
//   - File paths: format the specified SQL file directly
//   - Directory paths: recursively find and format all .sql files
//   - "-": read SQL from stdin and write the result to stdout
//   - No arguments: format the paths listed in the config file
//
// Formatting is total — the formatter accepts any input without validating
// it — so the only failures this command reports are file I/O errors.
//
// Examples:
//
//	# Format single file to stdout
//	sqltidy fmt query.sql
//
//	# Format single file in-place
//	sqltidy fmt -w query.sql
//
//	# Format all SQL files in a directory tree in-place
//	sqltidy fmt -w db/
//
//	# Format stdin
//	echo "SELECT a FROM t" | sqltidy fmt -
func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Re-indent SQL files",
		ArgsUsage: "[path ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				paths = cfg.Paths
			}

			writeBack := cmd.Bool("write")

			for _, path := range paths {
				if path == "-" {
					if err := formatStream(cmd.Reader, cmd.Writer); err != nil {
						return err
					}
					continue
				}

				if err := formatPath(path, writeBack, cmd.Writer); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// formatStream re-indents everything read from r onto w.
func formatStream(r io.Reader, w io.Writer) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	return sqlformat.Fprint(w, string(content))
}

// formatPath handles formatting of either a single file or directory
// recursively.
func formatPath(path string, writeBack bool, writer io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return formatDirectory(path, writeBack, writer)
	}

	return formatFile(path, writeBack, writer)
}

// formatDirectory recursively walks through a directory and formats all .sql
// files in lexicographical order for consistent behavior across platforms.
func formatDirectory(dir string, writeBack bool, writer io.Writer) error {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return errors.Errorf("no SQL files found in directory: %s", dir)
	}

	for _, sqlFile := range sqlFiles {
		if err := formatFile(sqlFile, writeBack, writer); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", sqlFile)
		}
	}

	return nil
}

// formatFile re-indents a single SQL file and either writes to stdout or back
// to the file.
func formatFile(path string, writeBack bool, writer io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted := sqlformat.Format(string(content))

	if writeBack {
		if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
		return nil
	}

	if _, err := fmt.Fprint(writer, formatted); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}
