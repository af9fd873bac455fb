// Package config provides YAML-based configuration loading for the Klondike
// CLI, terminal UI and SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-klondike/internal/registry"
)

// KlondikeConfig contains all configuration for a Klondike installation.
type KlondikeConfig struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig defines how new games are dealt.
type GameConfig struct {
	Variant string `yaml:"variant"` // a registered variant ID
	Piles   int    `yaml:"piles"`
	Draw    int    `yaml:"draw"`
	Shuffle bool   `yaml:"shuffle"`
	Seed    uint64 `yaml:"seed"` // 0 = random
}

// StorageConfig defines where results are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // "" = results are not saved
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Address returns host:port for the SSH listener.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SeedPtr returns the configured seed, or nil when games should be dealt
// from a random shuffle.
func (g GameConfig) SeedPtr() *uint64 {
	if g.Seed == 0 {
		return nil
	}
	seed := g.Seed
	return &seed
}

// Validate checks the configuration for values no game can start with.
func (c KlondikeConfig) Validate() error {
	var errs []error
	if !registry.Exists(c.Game.Variant) {
		errs = append(errs, fmt.Errorf("config: unknown variant %q", c.Game.Variant))
	}
	if c.Game.Piles < 1 {
		errs = append(errs, fmt.Errorf("config: piles must be at least 1, got %d", c.Game.Piles))
	}
	if c.Game.Draw < 1 {
		errs = append(errs, fmt.Errorf("config: draw must be at least 1, got %d", c.Game.Draw))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("config: port %d out of range", c.Server.Port))
	}
	return errors.Join(errs...)
}
