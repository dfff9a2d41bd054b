package route

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a route from a YAML or JSON file, chosen by extension, and
// validates it.
func Load(path string) (*Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func Parse(data []byte, ext string) (*Route, error) {
	var r Route
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, err
		}
	}
	out := New(r.Vehicle, r.Stops)
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
