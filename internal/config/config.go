// Package config loads the service configuration. Values come from, in
// increasing precedence: built-in defaults, an optional modclock.yaml,
// and MODCLOCK_* environment variables.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the service.
type Config struct {
	// Listen is the address the HTTP server binds to.
	Listen string
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
	// Workers is the size of the prime-search pool; 0 means NumCPU.
	Workers int
}

// Load reads the configuration. When path is empty, a modclock.yaml is
// looked up in the working directory and under ~/.config/modclock, and
// it is fine for none to exist; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("listen", ":5000")
	v.SetDefault("log_level", "info")
	v.SetDefault("workers", 0)

	v.SetEnvPrefix("modclock")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("modclock")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/modclock")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	return &Config{
		Listen:   v.GetString("listen"),
		LogLevel: v.GetString("log_level"),
		Workers:  v.GetInt("workers"),
	}, nil
}
