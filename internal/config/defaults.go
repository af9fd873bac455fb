package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/klondike.yaml
var defaultKlondikeYAML []byte

// DefaultKlondikeConfig returns the default configuration.
func DefaultKlondikeConfig() KlondikeConfig {
	return KlondikeConfig{
		Game: GameConfig{
			Variant: "basic",
			Piles:   7,
			Draw:    1,
			Shuffle: true,
		},
		Storage: StorageConfig{
			DBPath: "~/.klondike/scores.db",
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        2323,
			HostKeyPath: ".ssh/klondike_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultKlondikeYAML
}
