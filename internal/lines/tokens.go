package lines

import (
	"fmt"
	"strconv"
	"strings"
)

// Run is a maximal run of decimal digits inside a line.
type Run struct {
	Start int // byte offset of the first digit
	Len   int
	Value int
}

// End returns the offset one past the last digit of the run.
func (r Run) End() int {
	return r.Start + r.Len
}

// DigitRuns scans line left to right and returns every maximal run of digits.
func DigitRuns(line string) []Run {
	var runs []Run
	for i := 0; i < len(line); {
		if !IsDigit(line[i]) {
			i++
			continue
		}
		start, value := i, 0
		for ; i < len(line) && IsDigit(line[i]); i++ {
			value = value*10 + int(line[i]-'0')
		}
		runs = append(runs, Run{Start: start, Len: i - start, Value: value})
	}
	return runs
}

// Ints parses the whitespace separated fields of s as base-10 integers.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", field)
		}
		out = append(out, n)
	}
	return out, nil
}
