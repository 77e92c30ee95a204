package consts

import "os"

const (
	// ConfigFile is the standard name of the project configuration file
	ConfigFile = "sqltidy.yaml"

	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)
)
