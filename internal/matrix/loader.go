package matrix

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a matrix YAML file.
func Load(path string) (*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix file: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a matrix document. Status strings are normalized to the
// known enumeration; unknown values degrade to "not started" with a warning
// rather than failing the whole document.
func Parse(data []byte) (*Matrix, error) {
	var m Matrix
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matrix: %w", err)
	}

	for i := range m.APIs {
		api := &m.APIs[i]
		for j := range api.Versions {
			ver := &api.Versions[j]
			for k := range ver.Extensions {
				ext := &ver.Extensions[k]
				ext.Status = normalizeStatus(ext.Status, ext.Name)
				for l := range ext.SubExtensions {
					sub := &ext.SubExtensions[l]
					sub.Status = normalizeStatus(sub.Status, sub.Name)
				}
			}
		}
	}

	return &m, nil
}

// normalizeStatus maps a raw status string onto the enumeration. Matching is
// case-insensitive; empty and unrecognized values become "not started".
func normalizeStatus(raw Status, name string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(string(raw)))) {
	case StatusDone:
		return StatusDone
	case StatusInProgress:
		return StatusInProgress
	case StatusNotStarted, "":
		return StatusNotStarted
	default:
		log.Printf("Warning: unknown status %q on %s, treating as not started", raw, name)
		return StatusNotStarted
	}
}
