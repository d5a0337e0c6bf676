package stellar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps and the shorter forms people type
// into draft files. An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// draft is the on-disk form of a Request.
type draft struct {
	Request   `yaml:",inline"`
	StartDate string `json:"start_date" yaml:"start_date"`
	EndDate   string `json:"end_date" yaml:"end_date"`
}

func (d draft) request() (Request, error) {
	req := d.Request
	var err error
	if req.StartDate, err = ParseDate(d.StartDate); err != nil {
		return Request{}, fmt.Errorf("start_date: %w", err)
	}
	if req.EndDate, err = ParseDate(d.EndDate); err != nil {
		return Request{}, fmt.Errorf("end_date: %w", err)
	}
	return req, nil
}

// LoadRequest reads a single permit draft from a YAML (.yaml, .yml) or JSON
// file.
func LoadRequest(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, err
	}
	var d draft
	if err := unmarshalFor(path)(data, &d); err != nil {
		return Request{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	req, err := d.request()
	if err != nil {
		return Request{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return req, nil
}

// LoadRequests reads a batch of drafts. The file holds either a bare list or
// an object with a "permits" list.
func LoadRequests(path string) ([]Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	unmarshal := unmarshalFor(path)

	var drafts []draft
	if err := unmarshal(data, &drafts); err != nil {
		var wrapped struct {
			Permits []draft `json:"permits" yaml:"permits"`
		}
		if err := unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		drafts = wrapped.Permits
	}

	reqs := make([]Request, 0, len(drafts))
	for i, d := range drafts {
		req, err := d.request()
		if err != nil {
			return nil, fmt.Errorf("parsing %s: permit %d: %w", path, i+1, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func unmarshalFor(path string) func([]byte, any) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		return yaml.Unmarshal
	}
	return json.Unmarshal
}
