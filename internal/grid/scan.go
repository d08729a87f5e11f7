// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file builds the Grid index from raw schematic lines.
//
// Every digit cell points at the NumberSpan it belongs to through an explicit
// cell -> span index table.
package grid

import (
	"github.com/specialistvlad/puzzlegrid/internal/lines"
)

// background is the filler character; it is neither a digit nor a symbol.
const background = '.'

// gearRune marks a gear candidate.
const gearRune = '*'

// NumberSpan is a maximal horizontal run of digits read as one number.
type NumberSpan struct {
	Value  int
	Origin Cell // leftmost digit
	Length int
}

// Cells returns every cell the span occupies, left to right.
func (s NumberSpan) Cells() []Cell {
	cells := make([]Cell, s.Length)
	for i := range cells {
		cells[i] = Cell{X: s.Origin.X + i, Y: s.Origin.Y}
	}
	return cells
}

// Symbol is a non-digit, non-background cell.
type Symbol struct {
	At   Cell
	Rune byte
}

// IsGear reports whether the symbol is a gear candidate.
func (s Symbol) IsGear() bool {
	return s.Rune == gearRune
}

// Grid is the scanned schematic.
type Grid struct {
	spans    []NumberSpan
	spanAt   map[Cell]int
	symbols  []Symbol
	symbolAt map[Cell]struct{}
	width    int
	height   int
}

// Scan indexes rows. Rows shorter than the widest row behave as if padded
// with background cells.
func Scan(rows []string) *Grid {
	g := &Grid{
		spanAt:   make(map[Cell]int),
		symbolAt: make(map[Cell]struct{}),
		height:   len(rows),
	}

	for y, row := range rows {
		g.width = max(g.width, len(row))
		for x := 0; x < len(row); x++ {
			ch := row[x]
			at := Cell{X: x, Y: y}
			switch {
			case ch == background:
			case lines.IsDigit(ch):
				// A digit right after a digit on the same row extends that span.
				if idx, ok := g.spanAt[Cell{X: x - 1, Y: y}]; ok {
					span := &g.spans[idx]
					span.Value = span.Value*10 + int(ch-'0')
					span.Length++
					g.spanAt[at] = idx
					continue
				}
				g.spanAt[at] = len(g.spans)
				g.spans = append(g.spans, NumberSpan{Value: int(ch - '0'), Origin: at, Length: 1})
			default:
				g.symbols = append(g.symbols, Symbol{At: at, Rune: ch})
				g.symbolAt[at] = struct{}{}
			}
		}
	}
	return g
}

// Parse scans the lines of text.
func Parse(text string) *Grid {
	return Scan(lines.Collect(text))
}

// Size returns the width of the widest row and the number of rows.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Spans returns all spans in scan order.
func (g *Grid) Spans() []NumberSpan {
	return g.spans
}

// SpanAt returns the index of the span covering c.
func (g *Grid) SpanAt(c Cell) (int, bool) {
	idx, ok := g.spanAt[c]
	return idx, ok
}

// Symbols returns all symbol cells in scan order.
func (g *Grid) Symbols() []Symbol {
	return g.symbols
}

// IsSymbol reports whether c holds a symbol.
func (g *Grid) IsSymbol(c Cell) bool {
	_, ok := g.symbolAt[c]
	return ok
}

// Gears returns the symbol cells holding '*'.
func (g *Grid) Gears() []Symbol {
	var gears []Symbol
	for _, s := range g.symbols {
		if s.IsGear() {
			gears = append(gears, s)
		}
	}
	return gears
}
