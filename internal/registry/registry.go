package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

// SolveFunc computes one part's answer from the raw puzzle input.
type SolveFunc func(ctx context.Context, input string) (int, error)

// Puzzle holds the compiled Go parts of one day's solver.
type Puzzle struct {
	Day   int
	Title string
	Part1 SolveFunc
	Part2 SolveFunc
}

// Part returns the solver for part 1 or 2, or nil for any other part.
func (p *Puzzle) Part(n int) SolveFunc {
	switch n {
	case 1:
		return p.Part1
	case 2:
		return p.Part2
	}
	return nil
}

// Module is the interface that all puzzle modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered puzzles for a single application instance.
type Registry struct {
	puzzles map[string]*Puzzle
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		puzzles: make(map[string]*Puzzle),
	}
}

// NameForDay returns the canonical puzzle name for a day number.
func NameForDay(day int) string {
	return "day" + strconv.Itoa(day)
}

// Normalize turns user supplied puzzle names such as "3", "03" or "Day03"
// into the canonical "day3" form. Names it does not recognize are returned
// lower-cased and otherwise untouched.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	digits := strings.TrimPrefix(n, "day")
	if day, err := strconv.Atoi(digits); err == nil && day > 0 && !strings.HasPrefix(digits, "+") {
		return NameForDay(day)
	}
	return n
}

// RegisterPuzzle registers a puzzle under name. Registering the same name
// twice is a programmer error and panics.
func (r *Registry) RegisterPuzzle(name string, p *Puzzle) {
	if _, exists := r.puzzles[name]; exists {
		panic(fmt.Sprintf("puzzle with name '%s' already registered", name))
	}
	slog.Debug("Registering puzzle.", "name", name, "day", p.Day)
	r.puzzles[name] = p
}

// Lookup returns the puzzle registered under the normalized form of name.
func (r *Registry) Lookup(name string) (*Puzzle, bool) {
	p, ok := r.puzzles[Normalize(name)]
	return p, ok
}

// Names returns every registered puzzle name ordered by day.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.puzzles))
	for name := range r.puzzles {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := r.puzzles[names[i]], r.puzzles[names[j]]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return names[i] < names[j]
	})
	return names
}

// Len returns the number of registered puzzles.
func (r *Registry) Len() int {
	return len(r.puzzles)
}
