package lines

import "fmt"

// ParseError reports a line that does not follow the expected grammar.
// Line and Column are 1-based; a zero Line means the position is unknown.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	case e.Column > 0:
		return fmt.Sprintf("column %d: %s", e.Column, e.Msg)
	default:
		return e.Msg
	}
}

// AtLine returns a copy of err positioned on the given 1-based line when err
// is a *ParseError. Other errors are returned unchanged.
func AtLine(err error, line int) error {
	if pe, ok := err.(*ParseError); ok {
		cp := *pe
		cp.Line = line
		return &cp
	}
	return err
}
