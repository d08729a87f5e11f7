// Package day02 solves the cube conundrum: games of coloured cubes drawn from
// a bag, checked against a bag limit and reduced to their minimal cube sets.
package day02

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
	"github.com/specialistvlad/puzzlegrid/internal/rounds"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Part1 sums the IDs of games possible with rounds.DefaultLimit in the bag.
func Part1(ctx context.Context, input string) (int, error) {
	games, err := rounds.ParseGames(input)
	if err != nil {
		return 0, err
	}
	sum, feasible := 0, 0
	for _, g := range games {
		if g.Feasible(rounds.DefaultLimit) {
			sum += g.ID
			feasible++
		}
	}
	ctxlog.FromContext(ctx).Debug("Feasible games found.", "games", len(games), "feasible", feasible)
	return sum, nil
}

// Part2 sums the power of each game's minimal cube set.
func Part2(ctx context.Context, input string) (int, error) {
	games, err := rounds.ParseGames(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		sum += g.MinimalSet().Power()
	}
	ctxlog.FromContext(ctx).Debug("Minimal sets computed.", "games", len(games))
	return sum, nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(registry.NameForDay(2), &registry.Puzzle{
		Day:   2,
		Title: "Cube Conundrum",
		Part1: Part1,
		Part2: Part2,
	})
}
