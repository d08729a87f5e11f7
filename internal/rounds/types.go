// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package rounds

import "fmt"

// Color identifies one of the three cube colours.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

var colorNames = [...]string{Red: "red", Green: "green", Blue: "blue"}

func (c Color) String() string {
	if c < Red || c > Blue {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Round is one handful of cubes shown during a game. Absent colours are zero.
type Round struct {
	Red   int
	Green int
	Blue  int
}

// DefaultLimit is the bag content the feasibility check is made against.
var DefaultLimit = Round{Red: 12, Green: 13, Blue: 14}

// Count returns the number of cubes of colour c.
func (r Round) Count(c Color) int {
	switch c {
	case Red:
		return r.Red
	case Green:
		return r.Green
	case Blue:
		return r.Blue
	}
	return 0
}

func (r *Round) set(c Color, n int) {
	switch c {
	case Red:
		r.Red = n
	case Green:
		r.Green = n
	case Blue:
		r.Blue = n
	}
}

// Within reports whether every colour count of r fits inside limit.
func (r Round) Within(limit Round) bool {
	return r.Red <= limit.Red && r.Green <= limit.Green && r.Blue <= limit.Blue
}

// Max returns the componentwise maximum of r and o.
func (r Round) Max(o Round) Round {
	return Round{
		Red:   max(r.Red, o.Red),
		Green: max(r.Green, o.Green),
		Blue:  max(r.Blue, o.Blue),
	}
}

// Power is the product of the three counts.
func (r Round) Power() int {
	return r.Red * r.Green * r.Blue
}

// Game is a parsed game line.
type Game struct {
	ID     int
	Rounds []Round
}

// Feasible reports whether every round of the game fits inside limit.
func (g Game) Feasible(limit Round) bool {
	for _, r := range g.Rounds {
		if !r.Within(limit) {
			return false
		}
	}
	return true
}

// MinimalSet returns the fewest cubes of each colour that could have
// produced every round of the game.
func (g Game) MinimalSet() Round {
	var acc Round
	for _, r := range g.Rounds {
		acc = acc.Max(r)
	}
	return acc
}
