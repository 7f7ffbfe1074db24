package config

// KeymapConfig is the root config for keymap.yaml.
// Bindings maps an action name to ebiten key names, e.g. interact: [Space].
type KeymapConfig struct {
	Bindings map[string][]string `yaml:"bindings"`
}
