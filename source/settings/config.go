package settings

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tim-hardcastle/indexkit/source/text"
)

// The environment variable naming an optional YAML file of shell settings.
const CONFIG_VARIABLE = "INDEXKIT_CONFIG"

// Config holds the things about the shell a user may reasonably want to change.
type Config struct {
	Width   int    `yaml:"width"`   // Right margin for help text.
	Display string `yaml:"display"` // "color" or "plain".
	Prompt  string `yaml:"prompt"`
	Driver  string `yaml:"driver"` // The SQL driver for table collections, as listed by 'drivers'.
	Source  string `yaml:"source"` // The data source name passed to the driver.
}

func DefaultConfig() Config {
	return Config{Width: 92, Display: "color", Prompt: text.PROMPT, Driver: "SQLite", Source: ":memory:"}
}

// LoadConfig reads the file at path over the defaults. A path of "" or a file that doesn't
// exist just gives the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultConfig().Width
	}
	if cfg.Display != "color" && cfg.Display != "plain" {
		return DefaultConfig(), fmt.Errorf("parsing config %s: display must be 'color' or 'plain', not %q", path, cfg.Display)
	}
	return cfg, nil
}

// LoadConfigFromEnv is LoadConfig applied to the file named by CONFIG_VARIABLE.
func LoadConfigFromEnv() (Config, error) {
	return LoadConfig(os.Getenv(CONFIG_VARIABLE))
}
