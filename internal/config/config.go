package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ConvertConfig tunes path conversion on the compatibility layer.
type ConvertConfig struct {
	// Cygpath overrides the conversion binary name.
	Cygpath string `toml:"cygpath" mapstructure:"cygpath"`
	// KeepNewline preserves a trailing newline emitted by the
	// conversion utility instead of trimming it.
	KeepNewline bool `toml:"keep_newline" mapstructure:"keep_newline"`
}

// LogConfig describes the optional diagnostic log destination.
// Rotation parameters follow lumberjack semantics.
type LogConfig struct {
	Level      string `toml:"level" mapstructure:"level"`
	File       string `toml:"file" mapstructure:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool   `toml:"compress" mapstructure:"compress"`
}

// Config represents the top-level TOML structure. The zero value leaves
// every behavior at its default; the tool never requires a config file.
type Config struct {
	Convert ConvertConfig `toml:"convert" mapstructure:"convert"`
	Log     LogConfig     `toml:"log" mapstructure:"log"`
}

// Load reads and decodes a TOML config file.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}
