package config

import (
	"os"

	"github.com/spf13/viper"
)

// Config holds all todo CLI configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Output  OutputConfig  `mapstructure:"output"`
}

// StorageConfig holds storage file settings
type StorageConfig struct {
	File string `mapstructure:"file"`
}

// OutputConfig holds display settings
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoadConfigWithFile loads configuration from a specific file if provided,
// otherwise falls back to LoadConfig with the working directory.
func LoadConfigWithFile(workDir, configFile string) (*Config, error) {
	if configFile != "" {
		return LoadConfigFromPath(configFile)
	}
	return LoadConfig(workDir)
}

// LoadConfig loads configuration from todo.yaml in the given directory,
// falling back to the global config file when no local one exists.
// If neither exists, sensible defaults are returned.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("todo")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No local config; try the global one.
		if globalPath, gerr := GlobalConfigPath(); gerr == nil {
			if _, serr := os.Stat(globalPath); serr == nil {
				return LoadConfigFromPath(globalPath)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFromPath loads configuration from a specific file path
func LoadConfigFromPath(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			cfg := &Config{}
			if err := v.Unmarshal(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets all default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.file", "todos.json")
	v.SetDefault("output.format", "table")
}
