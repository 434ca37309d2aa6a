// Package config is for run wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override settings,
// eg HSPBED_DISPLAY_NAME for "display-name".
const EnvPrefix = "HSPBED"

// Config is the root-level settings struct and is a mix of settings
// available in a settings file, the environment, and the command line.
// It's fixed before a conversion starts.
type Config struct {
	// DisplayName replaces the query id in BED records, if DisplayNameSet
	DisplayName string `mapstructure:"display-name"`

	// DisplayNameSet is true when a display name was given, even an empty one
	DisplayNameSet bool `mapstructure:"-"`

	// HSPFile is the input path. Empty or "-" is stdin
	HSPFile string `mapstructure:"hsp-file"`

	// BEDFile is the output path. Empty or "-" is stdout
	BEDFile string `mapstructure:"bed-file"`

	// Reverse makes the query, rather than the target, the BED interval
	Reverse bool `mapstructure:"reverse"`

	// TransformEvalue scores records on [0, 1000] rather than with the raw e-value
	TransformEvalue bool `mapstructure:"transform-evalue"`

	// Verbose logs a run summary to stderr
	Verbose bool `mapstructure:"verbose"`
}

// defaults registers every key so environment variables
// are seen even when no flag or settings file names them.
// display-name has none: an unset display name differs from an empty one.
var defaults = map[string]interface{}{
	"hsp-file":         "",
	"bed-file":         "",
	"reverse":          false,
	"transform-evalue": false,
	"verbose":          false,
}

// New returns a Config populated by Viper: flags bound to v, then
// HSPBED_* environment variables, then the settings file (if not empty).
func New(v *viper.Viper, settings string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	if settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings into struct: %w", err)
	}
	c.DisplayNameSet = v.IsSet("display-name")
	return &c, nil
}
