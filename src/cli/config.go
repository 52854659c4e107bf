package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml"
)

// ConfigEnv names the environment variable holding the default config path.
const ConfigEnv = "RATIO_CONFIG"

const (
	defaultFormat = "text"
	defaultPrompt = "ratio> "
)

// Config holds CLI defaults read from a TOML file. Command-line flags win
// over anything set here.
type Config struct {
	Output struct {
		Format string `toml:"format"`
	} `toml:"output"`
	Parse struct {
		Normalize bool `toml:"normalize"`
	} `toml:"parse"`
	Repl struct {
		Prompt  string `toml:"prompt"`
		History string `toml:"history"`
	} `toml:"repl"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads the TOML file at path. An empty path yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	err = toml.Unmarshal(f, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if !slices.Contains(ValidFormats, cfg.Output.Format) {
		return nil, fmt.Errorf("config %s: invalid format %q: must be one of %v", path, cfg.Output.Format, ValidFormats)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = defaultFormat
	}
	if c.Repl.Prompt == "" {
		c.Repl.Prompt = defaultPrompt
	}
}
