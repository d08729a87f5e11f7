// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package scratchcard

// Expand returns how many instances of each card end up being held. Every
// card starts with its original; card i then hands one extra copy of each of
// the next matchCounts[i] cards to every instance of itself. Awards past the
// last card are dropped.
//
// Cards only ever award later cards, so a single left-to-right sweep settles
// copies[i] before it is used.
func Expand(matchCounts []int) []int {
	copies := make([]int, len(matchCounts))
	for i := range copies {
		copies[i] = 1
	}
	for i, m := range matchCounts {
		last := min(i+m, len(copies)-1)
		for j := i + 1; j <= last; j++ {
			copies[j] += copies[i]
		}
	}
	return copies
}

// Total returns the number of cards held once all copies are awarded.
func Total(matchCounts []int) int {
	total := 0
	for _, n := range Expand(matchCounts) {
		total += n
	}
	return total
}
