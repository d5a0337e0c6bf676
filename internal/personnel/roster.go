package personnel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRoster reads people from a YAML (.yaml, .yml) or JSON file. The file
// holds either a bare list or an object with a "personnel" list.
func LoadRoster(path string) ([]Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var roster struct {
		Personnel []Person `json:"personnel" yaml:"personnel"`
	}
	unmarshal := json.Unmarshal
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		unmarshal = yaml.Unmarshal
	}

	var people []Person
	if err := unmarshal(data, &people); err == nil {
		return people, nil
	}
	if err := unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parsing roster %s: %w", path, err)
	}
	return roster.Personnel, nil
}

// FindByID returns the person with the given ID.
func FindByID(roster []Person, id string) (Person, bool) {
	for _, p := range roster {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}
