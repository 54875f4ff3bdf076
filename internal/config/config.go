package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Codec   CodecConfig   `yaml:"codec"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type CodecConfig struct {
	// Width selects VarInt (32) or VarLong (64) when no flag is given.
	Width int `yaml:"width"`
	// Signed treats values as two's-complement by default.
	Signed bool `yaml:"signed"`
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Codec:   CodecConfig{Width: 32},
	}
}

// Load reads a yaml config from path. A missing file is not an error: the
// defaults are returned so the tool works without any setup.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Codec.Width != 32 && cfg.Codec.Width != 64 {
		return nil, fmt.Errorf("codec.width must be 32 or 64, got %d", cfg.Codec.Width)
	}
	return cfg, nil
}
