package game

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samdwyer/cavedash/internal/gamedata"
)

// CaveData returns the raw cave buffer and display name selected by cfg,
// reading from disk when CaveFile is set and from the library otherwise.
func CaveData(cfg Config, registry *gamedata.CaveRegistry) ([]byte, string, error) {
	if cfg.CaveFile != "" {
		data, err := os.ReadFile(cfg.CaveFile)
		if err != nil {
			return nil, "", fmt.Errorf("read cave file: %w", err)
		}
		return data, filepath.Base(cfg.CaveFile), nil
	}

	def, err := registry.Lookup(cfg.CaveID)
	if err != nil {
		return nil, "", err
	}
	data, err := def.Bytes()
	if err != nil {
		return nil, "", err
	}
	return data, def.Name, nil
}

// nextCaveID returns the library cave after id, wrapping to the first.
func nextCaveID(registry *gamedata.CaveRegistry, id string) string {
	caves := registry.All()
	if len(caves) == 0 {
		return id
	}
	for i := range caves {
		if caves[i].ID == id {
			return caves[(i+1)%len(caves)].ID
		}
	}
	return caves[0].ID
}
