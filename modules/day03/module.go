// Package day03 solves the gear ratios puzzle on an engine schematic grid.
package day03

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/grid"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func scan(ctx context.Context, input string) *grid.Grid {
	g := grid.Parse(input)
	w, h := g.Size()
	ctxlog.FromContext(ctx).Debug("Schematic scanned.",
		"width", w, "height", h,
		"spans", len(g.Spans()), "symbols", len(g.Symbols()), "gears", len(g.Gears()))
	return g
}

// Part1 sums every number adjacent to a symbol.
func Part1(ctx context.Context, input string) (int, error) {
	return scan(ctx, input).PartNumberSum(), nil
}

// Part2 sums the ratios of every '*' touching exactly two numbers.
func Part2(ctx context.Context, input string) (int, error) {
	return scan(ctx, input).GearRatioSum(), nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(registry.NameForDay(3), &registry.Puzzle{
		Day:   3,
		Title: "Gear Ratios",
		Part1: Part1,
		Part2: Part2,
	})
}
