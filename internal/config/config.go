package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields both showroom surfaces need.
type Config struct {
	DataDir  string // directory holding the shared slot file and logs
	Currency string // symbol prefixed to displayed prices
	Admin    AdminConfig
}

// AdminConfig holds the admin surface's login check. This is a placeholder
// equality test, not an authentication mechanism; the defaults exist so the
// admin surface works out of the box on a private machine.
type AdminConfig struct {
	Username string
	Password string
}

const (
	defaultConfigPath = "~/.config/showroom/config.toml"
	defaultDataDir    = "~/.local/share/showroom"
	defaultCurrency   = "₹"
	defaultUsername   = "Admin@123"
	defaultPassword   = "237007"
)

// Load locates and parses the showroom config, falling back to defaults
// when the file is missing or fields are empty.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Currency: defaultCurrency,
		Admin:    AdminConfig{Username: defaultUsername, Password: defaultPassword},
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.DataDir = mustExpand(defaultDataDir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir  string `toml:"data_dir"`
		Currency string `toml:"currency"`
		Admin    struct {
			Username string `toml:"username"`
			Password string `toml:"password"`
		} `toml:"admin"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.DataDir = strings.TrimSpace(raw.DataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	cfg.DataDir = mustExpand(cfg.DataDir)

	if c := strings.TrimSpace(raw.Currency); c != "" {
		cfg.Currency = c
	}
	if u := strings.TrimSpace(raw.Admin.Username); u != "" {
		cfg.Admin.Username = u
	}
	if p := strings.TrimSpace(raw.Admin.Password); p != "" {
		cfg.Admin.Password = p
	}

	return cfg, nil
}

// LogDir returns the directory log files are written to.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir + "/logs")
	}
	return filepath.Join(c.DataDir, "logs")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
