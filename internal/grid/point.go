package grid

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Point is a grid coordinate. X grows to the right, Y grows downward.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Cell is the coordinate type used by the scanner.
type Cell = Point[int]

// Add returns p translated by d.
func (p Point[T]) Add(d Point[T]) Point[T] {
	return Point[T]{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neighbors yields the eight cells surrounding p. The point itself is never
// yielded.
func (p Point[T]) Neighbors() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for dy := T(-1); dy <= 1; dy++ {
			for dx := T(-1); dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if !yield(Point[T]{X: p.X + dx, Y: p.Y + dy}) {
					return
				}
			}
		}
	}
}
