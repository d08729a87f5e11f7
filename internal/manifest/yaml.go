package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlManifestFile struct {
	Puzzles []yamlPuzzle `yaml:"puzzles"`
}

type yamlPuzzle struct {
	Name    string      `yaml:"name"`
	Input   string      `yaml:"input"`
	Enabled *bool       `yaml:"enabled"`
	Expect  *yamlExpect `yaml:"expect"`
}

type yamlExpect struct {
	Part1 *int `yaml:"part1"`
	Part2 *int `yaml:"part2"`
}

// decodeYAML parses a single YAML manifest. Unknown keys are rejected.
func decodeYAML(filePath string) ([]Entry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", filePath, err)
	}

	var parsed yamlManifestFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filePath, err)
	}

	entries := make([]Entry, 0, len(parsed.Puzzles))
	for _, p := range parsed.Puzzles {
		e := Entry{Name: p.Name, Input: p.Input, Enabled: true, Source: filePath}
		if p.Enabled != nil {
			e.Enabled = *p.Enabled
		}
		if p.Expect != nil {
			e.Expect = &Expect{Part1: p.Expect.Part1, Part2: p.Expect.Part2}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
