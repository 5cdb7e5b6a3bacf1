package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config captures runtime configuration for the application. Flag parsing
// lives in the CLI layer; this package resolves the values it hands over.
type Config struct {
	CacheFile  string
	ColorsFile string
	LogFile    string
	Debug      bool
}

// Resolve fills in the XDG default locations for any path the flags left
// empty.
func Resolve(cacheFile, colorsFile, logFile string, debug bool) (Config, error) {
	cfg := Config{
		CacheFile:  cacheFile,
		ColorsFile: colorsFile,
		LogFile:    logFile,
		Debug:      debug,
	}
	if cfg.CacheFile == "" {
		path, err := DefaultCachePath()
		if err != nil {
			return Config{}, err
		}
		cfg.CacheFile = path
	}
	if cfg.ColorsFile == "" {
		path, err := DefaultColorsPath()
		if err != nil {
			return Config{}, err
		}
		cfg.ColorsFile = path
	}
	return cfg, nil
}

// DefaultCachePath locates the candidate cache under the XDG cache directory.
func DefaultCachePath() (string, error) {
	base, err := baseDir("XDG_CACHE_HOME", ".cache")
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "tmux-fzy", "paths"), nil
}

// DefaultColorsPath locates the color configuration under the XDG config
// directory.
func DefaultColorsPath() (string, error) {
	base, err := baseDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "tmux-fzy", "config.toml"), nil
}

// baseDir returns the XDG base directory named by envKey. Unset or relative
// values are ignored per the base directory spec, falling back to
// $HOME/<fallback>.
func baseDir(envKey, fallback string) (string, error) {
	if dir := os.Getenv(envKey); filepath.IsAbs(dir) {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, fallback), nil
}
