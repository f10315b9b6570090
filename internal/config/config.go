package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PUSOY_REDIS_ADDR.
const EnvPrefix = "PUSOY"

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// TTLSeconds expires stored games; zero keeps them forever.
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

type SessionConfig struct {
	Secret     string `mapstructure:"secret"`
	Issuer     string `mapstructure:"issuer"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

type GameConfig struct {
	MinPlayers      int           `mapstructure:"min_players"`
	MaxPlayers      int           `mapstructure:"max_players"`
	Jokers          int           `mapstructure:"jokers"`
	ReversalEnabled bool          `mapstructure:"reversal_enabled"`
	LogLevel        string        `mapstructure:"log_level"`
	Redis           RedisConfig   `mapstructure:"redis"`
	Session         SessionConfig `mapstructure:"session"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

var ErrInvalidConfig = errors.New("invalid game config")

// LoadGameConfig loads the process-wide game configuration from the given path once.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		cfg, loadErr = Load(path)
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or the defaults when none was loaded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return Default()
	}
	return cfg
}

// Default returns the standard rule set: 2-4 players, two jokers, reversals on.
// The environment is not consulted.
func Default() *GameConfig {
	c, err := decode(newViper(false))
	if err != nil {
		panic(fmt.Sprintf("config: defaults do not decode: %v", err))
	}
	return c
}

// Load reads a config file (YAML, JSON or TOML by extension) with PUSOY_*
// environment overrides. An empty path uses defaults and the environment only.
func Load(path string) (*GameConfig, error) {
	return LoadWithFlags(path, nil)
}

// flagKeys maps command line flags onto config keys. Flags only win when set.
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"jokers":     "jokers",
	"redis-addr": "redis.addr",
}

// LoadWithFlags is Load with command line overrides taken from fs.
func LoadWithFlags(path string, fs *pflag.FlagSet) (*GameConfig, error) {
	v := newViper(true)
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read game config: %w", err)
		}
	}
	return decode(v)
}

func newViper(env bool) *viper.Viper {
	v := viper.New()
	v.SetDefault("min_players", 2)
	v.SetDefault("max_players", 4)
	v.SetDefault("jokers", 2)
	v.SetDefault("reversal_enabled", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl_seconds", 0)
	v.SetDefault("session.secret", "")
	v.SetDefault("session.issuer", "pusoydos")
	v.SetDefault("session.ttl_seconds", 3600)

	if env {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}
	return v
}

func decode(v *viper.Viper) (*GameConfig, error) {
	var c GameConfig
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the rule settings are playable.
func (c *GameConfig) Validate() error {
	switch {
	case c.MinPlayers < 2:
		return fmt.Errorf("%w: min_players must be at least 2, got %d", ErrInvalidConfig, c.MinPlayers)
	case c.MaxPlayers < c.MinPlayers:
		return fmt.Errorf("%w: max_players %d is below min_players %d", ErrInvalidConfig, c.MaxPlayers, c.MinPlayers)
	case c.Jokers < 0 || c.Jokers > 2:
		return fmt.Errorf("%w: jokers must be between 0 and 2, got %d", ErrInvalidConfig, c.Jokers)
	}
	return nil
}
