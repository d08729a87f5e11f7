package app

import "fmt"

// AnswerMismatchError reports a part whose answer differs from the one the
// run was told to expect.
type AnswerMismatchError struct {
	Puzzle string
	Part   int
	Got    int
	Want   int
}

func (e *AnswerMismatchError) Error() string {
	return fmt.Sprintf("%s part %d: got %d, want %d", e.Puzzle, e.Part, e.Got, e.Want)
}

// UnknownPuzzleError is returned when a requested puzzle is not registered.
type UnknownPuzzleError struct {
	Name  string
	Known []string
}

func (e *UnknownPuzzleError) Error() string {
	return fmt.Sprintf("unknown puzzle %q (available: %v)", e.Name, e.Known)
}
