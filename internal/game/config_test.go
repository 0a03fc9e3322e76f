package game

import (
	"errors"
	"testing"

	"github.com/samdwyer/cavedash/internal/cave"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != 1 {
		t.Errorf("DefaultConfig().Level = %d, want 1", cfg.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"level 5", Config{Level: 5}, false},
		{"library cave", Config{CaveID: "vault", Level: 2}, false},
		{"file cave", Config{CaveFile: "cave.bin", Level: 1}, false},
		{"level 0", Config{Level: 0}, true},
		{"level 6", Config{Level: 6}, true},
		{"both sources", Config{CaveID: "intro", CaveFile: "cave.bin", Level: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateLevelError(t *testing.T) {
	err := Config{Level: 9}.Validate()
	if !errors.Is(err, cave.ErrInvalidLevel) {
		t.Errorf("Validate() error = %v, want ErrInvalidLevel", err)
	}
}
