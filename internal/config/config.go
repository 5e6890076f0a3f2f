// Package config loads the ftml CLI's runtime configuration, mirroring
// util.LoadConfig's viper-over-env-file pattern.
package config

import (
	"github.com/spf13/viper"
)

// Config is the CLI's configuration surface: everything that can be
// supplied by an "app.env"-style file or the matching environment
// variables, plus the settings forwarded into ftml.Parse.
type Config struct {
	Environment    string `mapstructure:"ENVIRONMENT"`
	CatalogueFile  string `mapstructure:"CATALOGUE_FILE"`
	Layout         string `mapstructure:"LAYOUT"`
	RecursionLimit int    `mapstructure:"RECURSION_LIMIT"`
	AllowHTML      bool   `mapstructure:"ALLOW_HTML_ATTRIBUTES"`
	EnableInclude  bool   `mapstructure:"ENABLE_INCLUDE"`
}

// LoadConfig reads "app.env" (or its environment-variable overrides)
// from path. A missing file is not fatal: defaults below still apply,
// since the CLI is usable with no configuration at all.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("CATALOGUE_FILE", "")
	v.SetDefault("LAYOUT", "wikidot")
	v.SetDefault("RECURSION_LIMIT", 100)
	v.SetDefault("ALLOW_HTML_ATTRIBUTES", false)
	v.SetDefault("ENABLE_INCLUDE", false)

	if readErr := v.ReadInConfig(); readErr != nil {
		if _, notFound := readErr.(viper.ConfigFileNotFoundError); !notFound {
			err = readErr
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}
