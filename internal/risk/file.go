package risk

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadPatternsFile reads a pattern table from a YAML (.yaml, .yml) or JSON
// file.
func LoadPatternsFile(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var patterns []Pattern
	if isYAML(path) {
		err = yaml.Unmarshal(data, &patterns)
	} else {
		err = json.Unmarshal(data, &patterns)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return patterns, nil
}

// WritePatternsFile writes patterns to path, choosing YAML or JSON by
// extension. The parent directory is created if needed.
func WritePatternsFile(path string, patterns []Pattern) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(patterns)
	} else {
		data, err = json.MarshalIndent(patterns, "", "  ")
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
