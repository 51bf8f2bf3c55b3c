package patterns

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

/*

Library files: one JSON artifact per family.

*/

// WriteLibrary writes a library to dir/<family_id>.json,
// creating the directory if needed, and returns the path.
func WriteLibrary(dir string, lib Library) (string, error) {
	if lib.FamilyID == "" {
		return "", fmt.Errorf("library has no family id")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, lib.FamilyID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ReadLibrary loads a library written by WriteLibrary.
func ReadLibrary(path string) (Library, error) {
	var lib Library
	data, err := os.ReadFile(path)
	if err != nil {
		return lib, err
	}
	if err := json.Unmarshal(data, &lib); err != nil {
		return lib, fmt.Errorf("malformed library %s: %v", path, err)
	}
	return lib, nil
}
