package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the CLI-level settings for repofetch
type Config struct {
	Host string    `mapstructure:"host"`
	Log  LogConfig `mapstructure:"log"`
}

// LogConfig defines logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional file, REPOFETCH_* environment
// variables, and defaults. An explicit path must exist; otherwise a
// repofetch.yaml in the working directory is picked up when present.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("repofetch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	v.SetEnvPrefix("REPOFETCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "aone")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "pretty")
}
