package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// GameData provides access to the static game data files under a root
// directory.
type GameData struct {
	rootDir string
}

// NewGameData creates a GameData rooted at the given directory.
func NewGameData(rootDir string) *GameData {
	return &GameData{rootDir: rootDir}
}

// GetPath returns the full path of a data file.
func (gd *GameData) GetPath(path string) string {
	return filepath.Join(gd.rootDir, path)
}

// PathExists returns true if the path exists, false otherwise.
func (gd *GameData) PathExists(path string) bool {
	_, err := os.Stat(gd.GetPath(path))
	return !os.IsNotExist(err)
}

// LoadJSONFile loads a JSON data file and unmarshals it into the provided
// value.
func (gd *GameData) LoadJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(gd.GetPath(path))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode JSON from %s: %w", path, err)
	}
	return nil
}

// SaveJSONFile marshals the provided value and saves it to a JSON file.
func (gd *GameData) SaveJSONFile(data interface{}, path string) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data to JSON for %s: %w", path, err)
	}
	return os.WriteFile(gd.GetPath(path), jsonData, 0644)
}
