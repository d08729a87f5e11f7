package lines

import (
	"iter"
	"strings"
)

// Lines returns a lazy sequence of (index, line) pairs over text. Lines are
// split on '\n' with a trailing '\r' removed, and a final line break does not
// produce an extra empty line. The sequence can be ranged over any number of
// times.
func Lines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		rest := text
		for i := 0; rest != ""; i++ {
			line, tail, found := strings.Cut(rest, "\n")
			if !found {
				tail = ""
			}
			if !yield(i, strings.TrimSuffix(line, "\r")) {
				return
			}
			rest = tail
		}
	}
}

// Collect materializes Lines(text) into a slice.
func Collect(text string) []string {
	var out []string
	for _, line := range Lines(text) {
		out = append(out, line)
	}
	return out
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Digits returns every ASCII digit of line as its integer value, in order.
func Digits(line string) []int {
	var out []int
	for i := 0; i < len(line); i++ {
		if IsDigit(line[i]) {
			out = append(out, int(line[i]-'0'))
		}
	}
	return out
}
