package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/cavedash/internal/gamedata"
)

func TestCaveDataLibrary(t *testing.T) {
	registry := gamedata.MustLoadCaveRegistry()

	data, name, err := CaveData(Config{Level: 1}, registry)
	if err != nil {
		t.Fatalf("CaveData() error = %v", err)
	}
	if name != "Intro" {
		t.Errorf("name = %q, want %q", name, "Intro")
	}
	if len(data) == 0 || data[0] != 0x01 {
		t.Errorf("data = % X, want cave number 01 first", data)
	}

	_, name, err = CaveData(Config{CaveID: "vault", Level: 1}, registry)
	if err != nil || name != "Vault" {
		t.Errorf("CaveData(vault) = %q, %v", name, err)
	}
}

func TestCaveDataUnknown(t *testing.T) {
	_, _, err := CaveData(Config{CaveID: "nope", Level: 1}, gamedata.MustLoadCaveRegistry())
	if !errors.Is(err, gamedata.ErrUnknownCave) {
		t.Errorf("CaveData() error = %v, want ErrUnknownCave", err)
	}
}

func TestCaveDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.cave")
	want := []byte{0x07, 0xFF}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	data, name, err := CaveData(Config{CaveFile: path, Level: 1}, gamedata.MustLoadCaveRegistry())
	if err != nil {
		t.Fatalf("CaveData() error = %v", err)
	}
	if name != "custom.cave" || string(data) != string(want) {
		t.Errorf("CaveData() = % X, %q", data, name)
	}

	_, _, err = CaveData(Config{CaveFile: path + ".missing", Level: 1}, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
}

func TestNextCaveID(t *testing.T) {
	registry := gamedata.MustLoadCaveRegistry()
	tests := []struct {
		id, want string
	}{
		{"intro", "vault"},
		{"vault", "intro"},
		{"missing", "intro"},
	}
	for _, tt := range tests {
		if got := nextCaveID(registry, tt.id); got != tt.want {
			t.Errorf("nextCaveID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
