// Package config loads the sqltidy project configuration from YAML.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultDSN is the connection target used when the config file doesn't
// specify one.
const DefaultDSN = "localhost:9000"

type (
	// ClickHouse represents ClickHouse-specific configuration settings.
	ClickHouse struct {
		// DSN is the connection target, either "host:port" or a
		// clickhouse:// URL carrying credentials
		DSN string `yaml:"dsn,omitempty"`
	}

	// Config represents the project configuration for sqltidy.
	//
	// Example sqltidy.yaml:
	//
	//	clickhouse:
	//	  dsn: localhost:9000
	//	paths:
	//	  - db/
	Config struct {
		// ClickHouse contains connection settings for the exec command
		ClickHouse ClickHouse `yaml:"clickhouse"`

		// Paths lists the files or directories the fmt command formats when
		// no argument is given
		Paths []string `yaml:"paths,omitempty"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader and
// applies defaults for anything left unset.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader("clickhouse:\n  dsn: localhost:9000\n"))
//	if err != nil {
//	    return err
//	}
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a Config with every field set to its default value.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfigFile loads a project configuration from the named file.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer f.Close()

	return LoadConfig(f)
}

func (c *Config) applyDefaults() {
	if c.ClickHouse.DSN == "" {
		c.ClickHouse.DSN = DefaultDSN
	}

	if len(c.Paths) == 0 {
		c.Paths = []string{"."}
	}
}
