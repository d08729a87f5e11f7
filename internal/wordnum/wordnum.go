// Package wordnum recognizes digits written either as a decimal character or
// as an English word ("one" through "nine") inside calibration strings.
package wordnum

import (
	"errors"
	"strings"

	"github.com/specialistvlad/puzzlegrid/internal/lines"
)

// ErrNoMatch is returned by Calibration when a line holds no digit at all.
var ErrNoMatch = errors.New("no digit found")

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Match tries to read one digit token starting at offset. It returns the
// digit's value and the number of bytes the token spans.
func Match(s string, offset int) (value, length int, ok bool) {
	if offset < 0 || offset >= len(s) {
		return 0, 0, false
	}
	if lines.IsDigit(s[offset]) {
		return int(s[offset] - '0'), 1, true
	}
	rest := s[offset:]
	for i, w := range words {
		if strings.HasPrefix(rest, w) {
			return i + 1, len(w), true
		}
	}
	return 0, 0, false
}

// All returns every digit token in s. Matching is attempted at each offset,
// so tokens that share letters ("eightwo") are all reported.
func All(s string) []int {
	var out []int
	for i := range len(s) {
		if v, _, ok := Match(s, i); ok {
			out = append(out, v)
		}
	}
	return out
}

// Calibration combines the first and last values into a two-digit number.
// A single value is used for both positions.
func Calibration(values []int) (int, error) {
	if len(values) == 0 {
		return 0, ErrNoMatch
	}
	return 10*values[0] + values[len(values)-1], nil
}
