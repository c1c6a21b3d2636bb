package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the small set of knobs dixit reads from config.yaml.
type Config struct {
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`
	Theme   string `yaml:"theme" mapstructure:"theme"`
	NoColor bool   `yaml:"no_color" mapstructure:"no_color"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: "classic",
	}
}

// Load reads config.yaml from the working directory, $XDG_CONFIG_HOME/dixit
// or ~/.config/dixit, overlaid with DIXIT_* environment variables. A
// missing file is fine; defaults apply.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "dixit"))
	}
	home, _ := os.UserHomeDir()
	v.AddConfigPath(filepath.Join(home, ".config", "dixit"))

	v.SetEnvPrefix("DIXIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	cfg.normalize()
	return cfg, nil
}

// normalize repairs values rather than failing: a bad theme is not
// worth refusing to start over.
func (c *Config) normalize() {
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		c.Theme = "classic"
	}
}
