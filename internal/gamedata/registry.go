package gamedata

import (
	"errors"
	"fmt"
)

// CaveRegistry holds the loaded cave library.
type CaveRegistry struct {
	caves []CaveDef
	byID  map[string]*CaveDef
}

// NewCaveRegistry creates a registry from loaded cave definitions.
func NewCaveRegistry(caves []CaveDef) *CaveRegistry {
	r := &CaveRegistry{
		caves: caves,
		byID:  make(map[string]*CaveDef, len(caves)),
	}
	for i := range caves {
		r.byID[caves[i].ID] = &caves[i]
	}
	return r
}

// LoadCaveRegistry loads and creates a registry from the embedded caves.json.
func LoadCaveRegistry() (*CaveRegistry, error) {
	caves, err := LoadCaves()
	if err != nil {
		return nil, err
	}
	if len(caves) == 0 {
		return nil, errors.New("no caves loaded from caves.json")
	}
	return NewCaveRegistry(caves), nil
}

// MustLoadCaveRegistry loads a registry, panicking on error.
func MustLoadCaveRegistry() *CaveRegistry {
	registry, err := LoadCaveRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the cave with the given id, or nil if not found.
func (r *CaveRegistry) GetByID(id string) *CaveDef {
	return r.byID[id]
}

// Lookup returns the cave with the given id. An empty id selects the first cave.
func (r *CaveRegistry) Lookup(id string) (*CaveDef, error) {
	if id == "" {
		if len(r.caves) == 0 {
			return nil, ErrUnknownCave
		}
		return &r.caves[0], nil
	}
	if c := r.byID[id]; c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("%q: %w", id, ErrUnknownCave)
}

// All returns all cave definitions in library order.
func (r *CaveRegistry) All() []CaveDef {
	return r.caves
}

// Count returns the number of caves in the registry.
func (r *CaveRegistry) Count() int {
	return len(r.caves)
}
