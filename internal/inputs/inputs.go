// Package inputs embeds the worked sample inputs for every puzzle together
// with their known answers. They double as the default input when no file is
// given and as the reference data for self-checks.
package inputs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed samples/*.txt
var samples embed.FS

// Answer holds the two expected results of a puzzle.
type Answer struct {
	Part1 int
	Part2 int
}

// Get returns the answer for part 1 or 2.
func (a Answer) Get(part int) int {
	if part == 2 {
		return a.Part2
	}
	return a.Part1
}

var expected = map[string]Answer{
	"day1": {Part1: 142, Part2: 281},
	"day2": {Part1: 8, Part2: 2286},
	"day3": {Part1: 4361, Part2: 467835},
	"day4": {Part1: 13, Part2: 30},
}

// ErrNoSample is returned when no sample is embedded for a puzzle.
var ErrNoSample = errors.New("no embedded sample")

// Sample returns the embedded sample used for the given part. A part specific
// file (samples/<name>_part<N>.txt) takes precedence over samples/<name>.txt.
func Sample(name string, part int) (string, error) {
	for _, path := range []string{
		fmt.Sprintf("samples/%s_part%d.txt", name, part),
		fmt.Sprintf("samples/%s.txt", name),
	} {
		data, err := samples.ReadFile(path)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("reading sample %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("%s part %d: %w", name, part, ErrNoSample)
}

// Expected returns the known sample answers for a puzzle.
func Expected(name string) (Answer, bool) {
	a, ok := expected[name]
	return a, ok
}
