package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertAnswers checks that the run printed the given pair of answers.
func AssertAnswers(t *testing.T, result *HarnessResult, part1, part2 int) {
	t.Helper()

	expected := fmt.Sprintf("Part 1: %d\nPart 2: %d\n", part1, part2)
	require.True(t,
		strings.Contains(result.Output, expected),
		"expected answers %d/%d were not found in output:\n%s", part1, part2, result.Output,
	)
}

// AssertPuzzleSolved checks the log output to confirm that a puzzle ran to
// completion.
func AssertPuzzleSolved(t *testing.T, result *HarnessResult, puzzle string) {
	t.Helper()

	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, "Puzzle solved.") && strings.Contains(line, "puzzle="+puzzle+" ") {
			return
		}
	}
	t.Fatalf("expected log output for puzzle '%s' was not found in logs", puzzle)
}
