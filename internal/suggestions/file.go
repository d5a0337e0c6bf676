package suggestions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadWorkData reads completed works from a YAML (.yaml, .yml) or JSON
// file holding either a bare list or an object with a "works" list.
func LoadWorkData(path string) ([]WorkData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	unmarshal := json.Unmarshal
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		unmarshal = yaml.Unmarshal
	}

	var works []WorkData
	if err := unmarshal(data, &works); err == nil {
		return works, nil
	}
	var wrapped struct {
		Works []WorkData `json:"works" yaml:"works"`
	}
	if err := unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return wrapped.Works, nil
}
