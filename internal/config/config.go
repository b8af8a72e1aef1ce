// Package config provides YAML-based configuration loading for the
// tilt48 terminal game.
package config

import "fmt"

// Config holds all user-tunable settings.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig defines the board geometry.
type BoardConfig struct {
	Size int `yaml:"size"` // Side length of the square grid
}

// SpawnConfig defines the random tile-spawning policy.
type SpawnConfig struct {
	FourProb float64 `yaml:"four_prob"` // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// StorageConfig defines score persistence settings.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // Path to the scores database
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board:   BoardConfig{Size: 4},
		Spawn:   SpawnConfig{FourProb: 0.10},
		Storage: StorageConfig{DBPath: "~/.tilt48/scores.db"},
	}
}

// Validate checks the configuration for values the game cannot run
// with.
func (c Config) Validate() error {
	if c.Board.Size < 2 || c.Board.Size > 16 {
		return fmt.Errorf("config: board size %d out of range [2, 16]", c.Board.Size)
	}
	if c.Spawn.FourProb < 0 || c.Spawn.FourProb > 1 {
		return fmt.Errorf("config: spawn four_prob %v out of range [0, 1]", c.Spawn.FourProb)
	}
	return nil
}
