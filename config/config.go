package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding the config file, e.g. GENEALOGY_LOG_LEVEL.
const EnvPrefix = "GENEALOGY"

// Config is the configuration of the genealogy tool.
type Config struct {
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogOutput string `mapstructure:"LOG_OUTPUT"`
	Prompt    string `mapstructure:"PROMPT"`
	Title     string `mapstructure:"TITLE"`
}

var defaults = map[string]any{
	"LOG_LEVEL":  "info",
	"LOG_OUTPUT": "stderr",
	"PROMPT":     "genealogy> ",
	"TITLE":      "Genealogy Tree",
}

// Setup loads configuration from the file at cfgPath. Format is taken from the file extension
// (.env, .yaml, .toml, .json). Empty path means defaults overridden by the environment only.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %q failed", cfgPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config failed")
	}

	return &cfg, nil
}
