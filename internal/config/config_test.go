package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg.Board.Size != 4 {
		t.Errorf("Board.Size = %d, want 4", cfg.Board.Size)
	}
	if cfg.Spawn.FourProb != 0.10 {
		t.Errorf("Spawn.FourProb = %v, want 0.10", cfg.Spawn.FourProb)
	}
	if cfg.Storage.DBPath == "" {
		t.Error("Storage.DBPath is empty")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("board:\n  size: 5\nspawn:\n  four_prob: 0.25\nstorage:\n  db_path: scores.db\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) = %v", path, err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Spawn.FourProb != 0.25 {
		t.Errorf("Spawn.FourProb = %v, want 0.25", cfg.Spawn.FourProb)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing custom path should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"size too small", func(c *Config) { c.Board.Size = 1 }, true},
		{"size too large", func(c *Config) { c.Board.Size = 32 }, true},
		{"negative four_prob", func(c *Config) { c.Spawn.FourProb = -0.1 }, true},
		{"four_prob above one", func(c *Config) { c.Spawn.FourProb = 1.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
