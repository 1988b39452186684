package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

var knownKeys = map[string]struct{}{
	KeyAPIBaseURL:                   {},
	KeyAPITimeout:                   {},
	KeyRealtimeURL:                  {},
	KeyRealtimeMaxReconnectAttempts: {},
	KeyRealtimeReconnectDelay:       {},
	KeySessionBackend:               {},
	KeySessionPath:                  {},
	KeyLichessListenAddr:            {},
	KeyLichessTimeout:               {},
	KeyWagerDefaultCurrency:         {},
	KeyLogLevel:                     {},
}

// KnownKeys lists every settable key in sorted order.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for key := range knownKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Set writes key=value into the TOML file at path, keeping every other entry.
func Set(path, key, value string) error {
	key = strings.TrimSpace(key)
	if _, ok := knownKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q", key)
	}

	content, err := readFile(path)
	if err != nil {
		return err
	}

	section, field, _ := strings.Cut(key, ".")
	table, ok := content[section].(map[string]any)
	if !ok {
		table = map[string]any{}
	}
	table[field] = value
	content[section] = table

	return writeFile(path, content)
}

func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	content := map[string]any{}
	if err := toml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	return content, nil
}

func writeFile(path string, content map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	cleanup = false

	return nil
}
