package gamedata

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrUnknownCave is returned when a cave id is not in the library.
var ErrUnknownCave = errors.New("unknown cave")

// CaveDef is one entry of the embedded cave library.
type CaveDef struct {
	ID          string `json:"id"`          // Lookup key (e.g., "intro")
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // One-line summary
	Data        string `json:"data"`        // Legacy cave buffer, hex encoded
}

// Bytes returns the raw cave buffer.
func (c *CaveDef) Bytes() ([]byte, error) {
	data, err := hex.DecodeString(c.Data)
	if err != nil {
		return nil, fmt.Errorf("cave %s: decode hex: %w", c.ID, err)
	}
	return data, nil
}

// CavesFile represents the structure of caves.json.
type CavesFile struct {
	Caves []CaveDef `json:"caves"`
}

// LoadCaves loads cave definitions from the embedded caves.json file.
func LoadCaves() ([]CaveDef, error) {
	file, err := Load[CavesFile]("caves.json")
	if err != nil {
		return nil, err
	}
	return file.Caves, nil
}
