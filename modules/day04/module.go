// Package day04 solves the scratchcards puzzle.
package day04

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
	"github.com/specialistvlad/puzzlegrid/internal/scratchcard"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Part1 sums the point value of every card.
func Part1(ctx context.Context, input string) (int, error) {
	cards, err := scratchcard.ParseCards(input)
	if err != nil {
		return 0, err
	}
	points := 0
	for _, c := range cards {
		points += c.Points()
	}
	ctxlog.FromContext(ctx).Debug("Cards scored.", "cards", len(cards))
	return points, nil
}

// Part2 counts every card held once won copies are handed out.
func Part2(ctx context.Context, input string) (int, error) {
	cards, err := scratchcard.ParseCards(input)
	if err != nil {
		return 0, err
	}
	total := scratchcard.Total(scratchcard.MatchCounts(cards))
	ctxlog.FromContext(ctx).Debug("Card copies expanded.", "originals", len(cards), "total", total)
	return total, nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(registry.NameForDay(4), &registry.Puzzle{
		Day:   4,
		Title: "Scratchcards",
		Part1: Part1,
		Part2: Part2,
	})
}
