// Package config provides the calendar's configuration: process-wide
// defaults stored as JSON under ~/.config/mosque-calendar/ (XDG
// compliant) and per-deployment client documents overlaid at startup.
// The merge priority is: CLI flags > client document > config file >
// defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ami93120/mosque-calendar/internal/prayer"
)

const (
	configDirName  = "mosque-calendar"
	configFileName = "config.json"
)

// Config holds the location, calculation, and data-source settings one
// render pass reads. Components receive it explicitly; nothing reads
// ambient globals.
type Config struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	// AsrMethod is "Shafi" or "Hanafi".
	AsrMethod string `json:"asrMethod,omitempty"`
	// Timezone is the IANA zone all dates and times are local to.
	Timezone    string             `json:"timezone,omitempty"`
	Adjustments prayer.Adjustments `json:"adjustments"`
	// SchoolZone and Academy select the school-vacation feed
	// ("Zone C" / "Créteil" for the default deployment).
	SchoolZone string `json:"schoolZone,omitempty"`
	Academy    string `json:"academy,omitempty"`
	CacheDir   string `json:"cacheDir,omitempty"`
	// ClientsDir is where per-deployment client documents live.
	ClientsDir string `json:"clientsDir,omitempty"`
	// OverridesPath points at a date-keyed prayer-time override file.
	OverridesPath string `json:"overridesPath,omitempty"`
}

// Defaults returns the configuration of the reference deployment
// (La Courneuve).
func Defaults() Config {
	return Config{
		Latitude:   48.9322,
		Longitude:  2.3967,
		AsrMethod:  "Shafi",
		Timezone:   "Europe/Paris",
		SchoolZone: "Zone C",
		Academy:    "Créteil",
	}
}

// Dir returns the config directory, honoring $XDG_CONFIG_HOME.
func Dir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file, layered over Defaults. A missing file is
// not an error; invalid JSON is.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// SaveTo writes the config to a specific file path, creating the
// directory if needed.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// PrayerConfig maps the configuration onto the calculator's parameters.
func (c *Config) PrayerConfig() prayer.Config {
	return prayer.Config{
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		AsrMethod:   c.AsrMethod,
		Timezone:    c.Timezone,
		Adjustments: c.Adjustments,
	}
}
