// Package day01 solves the trebuchet calibration puzzle: every line hides a
// two-digit value made of its first and last digit.
package day01

import (
	"context"
	"fmt"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/lines"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
	"github.com/specialistvlad/puzzlegrid/internal/wordnum"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func calibrate(ctx context.Context, input string, extract func(string) []int) (int, error) {
	logger := ctxlog.FromContext(ctx)
	sum, n := 0, 0
	for i, line := range lines.Lines(input) {
		v, err := wordnum.Calibration(extract(line))
		if err != nil {
			return 0, fmt.Errorf("line %d %q: %w", i+1, line, err)
		}
		sum += v
		n++
	}
	logger.Debug("Calibration lines summed.", "lines", n, "sum", sum)
	return sum, nil
}

// Part1 sums the values built from plain decimal digits.
func Part1(ctx context.Context, input string) (int, error) {
	return calibrate(ctx, input, lines.Digits)
}

// Part2 also accepts digits spelled out as words; overlapping words count.
func Part2(ctx context.Context, input string) (int, error) {
	return calibrate(ctx, input, wordnum.All)
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(registry.NameForDay(1), &registry.Puzzle{
		Day:   1,
		Title: "Trebuchet?!",
		Part1: Part1,
		Part2: Part2,
	})
}
