package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all configurations loaded at startup
type GameConfig struct {
	Settings *SettingsConfig
	Keymap   *KeymapConfig
}

// Loader loads game configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem configs are read from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadSettings loads game.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg SettingsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	return &cfg, nil
}

// LoadKeymap loads keymap.yaml
func (l *Loader) LoadKeymap() (*KeymapConfig, error) {
	data, err := fs.ReadFile(l.fsys, "keymap.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read keymap.yaml: %w", err)
	}

	var cfg KeymapConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse keymap.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadWorld loads and schema-validates a world JSON file
func (l *Loader) LoadWorld(name string) (*WorldConfig, error) {
	path := "worlds/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world %s: %w", name, err)
	}

	if err := ValidateWorld(data); err != nil {
		return nil, fmt.Errorf("world %s: %w", name, err)
	}

	var cfg WorldConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse world %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (settings, keymap)
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	keymap, err := l.LoadKeymap()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Keymap:   keymap,
	}, nil
}
