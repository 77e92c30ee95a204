package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqltidy/pkg/config"
	"github.com/pseudomuto/sqltidy/pkg/consts"
	"github.com/urfave/cli/v3"
)

// loadConfig reads the config file named by the global --config flag. A
// missing file is not an error; built-in defaults apply so the CLI works in
// any directory.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	if path == "" {
		path = consts.ConfigFile
	}

	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return config.Default(), nil
		}
		return nil, err
	}

	return cfg, nil
}
