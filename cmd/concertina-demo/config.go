package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/concertina/transition"
)

// cliConfig holds the demo's runtime configuration.
type cliConfig struct {
	Animation    bool          `mapstructure:"animation"`
	Duration     time.Duration `mapstructure:"duration"`
	Easing       string        `mapstructure:"easing"`
	FPS          int           `mapstructure:"fps"`
	DeckPath     string        `mapstructure:"deck"`
	FeedInterval time.Duration `mapstructure:"feed-interval"`
	DebugLog     string        `mapstructure:"debug-log"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("CONCERTINA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("animation", true)
	v.SetDefault("duration", transition.DefaultDuration)
	v.SetDefault("easing", transition.EaseInOut.String())
	v.SetDefault("fps", transition.DefaultFPS)
	v.SetDefault("deck", "")
	v.SetDefault("feed-interval", time.Second)
	v.SetDefault("debug-log", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "concertina", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.FPS < 1 {
		return cfg, fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if cfg.FeedInterval <= 0 {
		return cfg, fmt.Errorf("feed-interval must be positive, got %v", cfg.FeedInterval)
	}

	return cfg, nil
}

// transitionSpec resolves the configured easing keyword and duration into a
// transition style.
func (c cliConfig) transitionSpec() (transition.Spec, error) {
	curve, err := transition.ParseCurve(c.Easing)
	if err != nil {
		return transition.Spec{}, fmt.Errorf("in config: %w", err)
	}
	spec := transition.Default()
	spec.Curve = curve
	if c.Duration > 0 {
		spec.Duration = c.Duration
	}
	return spec, nil
}
