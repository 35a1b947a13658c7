package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a build profile file.
func Load(path string) (Profile, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - profile path comes from the developer
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes a build profile. Unknown keys are rejected so a typo such
// as "disabel" does not silently leave a category on. An empty document is
// the zero profile.
func Parse(data []byte) (Profile, error) {
	var p Profile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Profile{}, nil
		}
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}

	return p, nil
}
