// Package scratchcard parses scratchcards and counts the copies they win.
package scratchcard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/puzzlegrid/internal/lines"
)

// Card is one scratchcard: the winning numbers and the numbers held.
type Card struct {
	ID      int
	Winning map[int]struct{}
	Have    map[int]struct{}
}

func toSet(nums []int) map[int]struct{} {
	set := make(map[int]struct{}, len(nums))
	for _, n := range nums {
		set[n] = struct{}{}
	}
	return set
}

// Matches returns how many held numbers are also winning numbers.
func (c Card) Matches() int {
	n := 0
	for v := range c.Have {
		if _, ok := c.Winning[v]; ok {
			n++
		}
	}
	return n
}

// Points is 1 for the first match, doubled for every further match.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func parseErr(format string, args ...any) error {
	return &lines.ParseError{Msg: fmt.Sprintf(format, args...)}
}

func numberList(s, side string) ([]int, error) {
	nums, err := lines.Ints(s)
	if err != nil {
		return nil, parseErr("%s numbers: %v", side, err)
	}
	if len(nums) == 0 {
		return nil, parseErr("%s numbers: list is empty", side)
	}
	return nums, nil
}

// ParseCard parses "Card <id>: <numbers> | <numbers>".
func ParseCard(line string) (Card, error) {
	rest, ok := strings.CutPrefix(line, "Card")
	if !ok {
		return Card{}, parseErr("expected %q", "Card")
	}
	trimmed := strings.TrimLeft(rest, " ")
	if len(trimmed) == len(rest) {
		return Card{}, parseErr("expected a space after %q", "Card")
	}

	idText, body, ok := strings.Cut(trimmed, ":")
	if !ok {
		return Card{}, parseErr("expected ':' after card id")
	}
	id, err := strconv.Atoi(idText)
	if err != nil || id < 0 || idText[0] == '+' {
		return Card{}, parseErr("invalid card id %q", idText)
	}

	winText, haveText, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, parseErr("expected '|' between number lists")
	}
	winning, err := numberList(winText, "winning")
	if err != nil {
		return Card{}, err
	}
	have, err := numberList(haveText, "held")
	if err != nil {
		return Card{}, err
	}

	return Card{ID: id, Winning: toSet(winning), Have: toSet(have)}, nil
}

// ParseCards parses every line of text as a card. The first malformed line
// aborts parsing; its error carries the 1-based line number.
func ParseCards(text string) ([]Card, error) {
	var cards []Card
	for i, line := range lines.Lines(text) {
		c, err := ParseCard(line)
		if err != nil {
			return nil, lines.AtLine(err, i+1)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MatchCounts returns Matches() for every card, in order.
func MatchCounts(cards []Card) []int {
	counts := make([]int, len(cards))
	for i, c := range cards {
		counts[i] = c.Matches()
	}
	return counts
}
