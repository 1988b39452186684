// Package config loads cw settings from ~/.chesswager/config.toml and CW_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".chesswager"
	envPrefix  = "CW"
)

const (
	KeyAPIBaseURL                   = "api.base_url"
	KeyAPITimeout                   = "api.timeout"
	KeyRealtimeURL                  = "realtime.url"
	KeyRealtimeMaxReconnectAttempts = "realtime.max_reconnect_attempts"
	KeyRealtimeReconnectDelay       = "realtime.reconnect_delay"
	KeySessionBackend               = "session.backend"
	KeySessionPath                  = "session.path"
	KeyLichessListenAddr            = "lichess.listen_addr"
	KeyLichessTimeout               = "lichess.timeout"
	KeyWagerDefaultCurrency         = "wager.default_currency"
	KeyLogLevel                     = "log.level"
)

type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Realtime RealtimeConfig `mapstructure:"realtime"`
	Session  SessionConfig  `mapstructure:"session"`
	Lichess  LichessConfig  `mapstructure:"lichess"`
	Wager    WagerConfig    `mapstructure:"wager"`
	Log      LogConfig      `mapstructure:"log"`

	// Path is the config file location, whether or not it exists yet.
	Path string `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RealtimeConfig struct {
	URL                  string        `mapstructure:"url"`
	MaxReconnectAttempts int           `mapstructure:"max_reconnect_attempts"`
	ReconnectDelay       time.Duration `mapstructure:"reconnect_delay"`
}

type SessionConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type LichessConfig struct {
	ListenAddr string        `mapstructure:"listen_addr"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type WagerConfig struct {
	DefaultCurrency string `mapstructure:"default_currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the config file in homeDir/.chesswager (optional) and applies env overrides.
func Load(v *viper.Viper, homeDir string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	if strings.TrimSpace(homeDir) == "" {
		return nil, errors.New("home directory is empty")
	}

	dir := filepath.Join(homeDir, configDir)
	setDefaults(v, dir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Path = filepath.Join(dir, configName+"."+configType)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault(KeyAPIBaseURL, "http://localhost:3000/api")
	v.SetDefault(KeyAPITimeout, 15*time.Second)
	v.SetDefault(KeyRealtimeURL, "ws://localhost:3000/ws")
	v.SetDefault(KeyRealtimeMaxReconnectAttempts, 5)
	v.SetDefault(KeyRealtimeReconnectDelay, time.Second)
	v.SetDefault(KeySessionBackend, "chain")
	v.SetDefault(KeySessionPath, filepath.Join(dir, "session"))
	v.SetDefault(KeyLichessListenAddr, "127.0.0.1:0")
	v.SetDefault(KeyLichessTimeout, 5*time.Minute)
	v.SetDefault(KeyWagerDefaultCurrency, "tokens")
	v.SetDefault(KeyLogLevel, "warn")
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.base_url is required")
	}
	if c.Realtime.MaxReconnectAttempts < 0 {
		return fmt.Errorf("realtime.max_reconnect_attempts must not be negative, got %d", c.Realtime.MaxReconnectAttempts)
	}
	if c.Realtime.ReconnectDelay < 0 {
		return fmt.Errorf("realtime.reconnect_delay must not be negative, got %s", c.Realtime.ReconnectDelay)
	}
	switch c.Session.Backend {
	case "chain", "file", "pass":
	default:
		return fmt.Errorf("unsupported session.backend %q", c.Session.Backend)
	}
	if strings.TrimSpace(c.Session.Path) == "" {
		return errors.New("session.path is required")
	}

	return nil
}

// DefaultHome resolves the user home directory.
func DefaultHome() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return homeDir, nil
}

type Entry struct {
	Key   string
	Value string
}

// Entries lists the effective value of every settable key, sorted by key.
func (c Config) Entries() []Entry {
	values := map[string]string{
		KeyAPIBaseURL:                   c.API.BaseURL,
		KeyAPITimeout:                   c.API.Timeout.String(),
		KeyRealtimeURL:                  c.Realtime.URL,
		KeyRealtimeMaxReconnectAttempts: strconv.Itoa(c.Realtime.MaxReconnectAttempts),
		KeyRealtimeReconnectDelay:       c.Realtime.ReconnectDelay.String(),
		KeySessionBackend:               c.Session.Backend,
		KeySessionPath:                  c.Session.Path,
		KeyLichessListenAddr:            c.Lichess.ListenAddr,
		KeyLichessTimeout:               c.Lichess.Timeout.String(),
		KeyWagerDefaultCurrency:         c.Wager.DefaultCurrency,
		KeyLogLevel:                     c.Log.Level,
	}

	entries := make([]Entry, 0, len(values))
	for _, key := range KnownKeys() {
		entries = append(entries, Entry{Key: key, Value: values[key]})
	}
	return entries
}
