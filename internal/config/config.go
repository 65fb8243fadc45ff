package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Output formats supported by the report writers.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, the input source,
// report output and metrics.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Log contains logger related configurations
	Log struct {
		// Level overrides the environment's default log level (debug, info, warn, error)
		Level string `env:"LOG_LEVEL" env-default:"" yaml:"level"`
	} `yaml:"log"`

	// Input contains the codes to decode
	Input struct {
		// Path is the text file read by the file command, one code per line
		Path string `env:"INPUT_PATH" env-default:"Data/idCodes.txt" yaml:"path"`
		// DemoCode is decoded before the file and by the decode command when no codes are given
		DemoCode string `env:"INPUT_DEMO_CODE" env-default:"34501234215" yaml:"demoCode"`
	} `yaml:"input"`

	// Output contains report rendering configurations
	Output struct {
		// Format is either text or json
		Format string `env:"OUTPUT_FORMAT" env-default:"text" yaml:"format"`
		// NoColor disables red error lines in the text format
		NoColor bool `env:"OUTPUT_NO_COLOR" env-default:"false" yaml:"noColor"`
		// ASCII folds facility names to plain ASCII
		ASCII bool `env:"OUTPUT_ASCII" env-default:"false" yaml:"ascii"`
	} `yaml:"output"`

	// Metrics contains decode metrics configurations
	Metrics struct {
		// TextfilePath is where Prometheus metrics are written after a run; empty disables metrics
		TextfilePath string `env:"METRICS_TEXTFILE_PATH" env-default:"" yaml:"textfilePath"`
	} `yaml:"metrics"`
}

// Validate checks the values that cannot be expressed with struct tags.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unsupported output format %q", c.Output.Format)
	}

	return nil
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: the configuration is then read from the
// environment and defaults only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("could not stat config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
