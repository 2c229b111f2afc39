package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const dirName = ".wealth360"

// Global configuration structure.
type Global struct {
	DefaultPersona string `mapstructure:"default_persona" yaml:"default_persona"`
	DefaultSection string `mapstructure:"default_section" yaml:"default_section"`
	OutputFormat   string `mapstructure:"output_format" yaml:"output_format"`
	Color          bool   `mapstructure:"color" yaml:"color"`
	// Optional YAML catalog replacing the built-in personas and sections
	CatalogFile  string `mapstructure:"catalog_file" yaml:"catalog_file"`
	BriefingsDir string `mapstructure:"briefings_dir" yaml:"briefings_dir"`
}

// Dir returns ~/.wealth360.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.wealth360/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("WEALTH360")
	v.AutomaticEnv()

	v.SetDefault("default_persona", "executive")
	v.SetDefault("default_section", "home")
	v.SetDefault("output_format", "text")
	v.SetDefault("color", true)
	v.SetDefault("catalog_file", "")
	v.SetDefault("briefings_dir", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		// a missing config file is fine; a malformed one is not
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve briefings_dir default: ~/.wealth360/briefings
	if c.BriefingsDir == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		c.BriefingsDir = filepath.Join(dir, "briefings")
	}
	return &c, nil
}
