package game

import (
	"errors"
	"fmt"

	"github.com/samdwyer/cavedash/internal/cave"
)

// Config holds game configuration options.
type Config struct {
	// CaveID selects a cave from the embedded library. Empty means the first cave.
	CaveID string
	// CaveFile, if set, loads a raw cave buffer from disk instead of the library.
	CaveFile string
	// Level is the difficulty level, 1..5.
	Level int
	// StepDebug pauses after every drawing command until space is pressed.
	StepDebug bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{Level: 1}
}

// Validate checks the configuration before a game starts.
func (c Config) Validate() error {
	if c.Level < 1 || c.Level > cave.Levels {
		return fmt.Errorf("level %d: %w", c.Level, cave.ErrInvalidLevel)
	}
	if c.CaveID != "" && c.CaveFile != "" {
		return errors.New("cave id and cave file are mutually exclusive")
	}
	return nil
}
