// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

// Expect holds the answers a puzzle must produce. A nil part is not checked.
type Expect struct {
	Part1 *int
	Part2 *int
}

// Get returns the expectation for part 1 or 2.
func (e *Expect) Get(part int) (int, bool) {
	if e == nil {
		return 0, false
	}
	var v *int
	switch part {
	case 1:
		v = e.Part1
	case 2:
		v = e.Part2
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Entry is one puzzle to run.
type Entry struct {
	Name    string // canonical puzzle name, e.g. "day3"
	Input   string // path of the input file; empty means the embedded sample
	Enabled bool
	Expect  *Expect
	Source  string // manifest file the entry came from
}

// Manifest is the merged content of every manifest file that was loaded.
type Manifest struct {
	Entries []Entry
}

// Enabled returns the entries that are switched on, in load order.
func (m *Manifest) Enabled() []Entry {
	var out []Entry
	for _, e := range m.Entries {
		if e.Enabled {
			out = append(out, e)
		}
	}
	return out
}
