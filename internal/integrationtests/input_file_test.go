package integrationtests

import (
	"testing"

	"github.com/specialistvlad/puzzlegrid/internal/app"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
	"github.com/specialistvlad/puzzlegrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFile_Calibration(t *testing.T) {
	files := map[string]string{
		"day1.txt": "two1nine\n4nineeightseven2\nzoneight234\n",
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{Puzzles: []string{"1"}, InputPath: "day1.txt"})

	require.NoError(t, result.Err)
	// Part 1 reads plain digits only: 11 + 42 + 24.
	testutil.AssertAnswers(t, result, 77, 29+42+14)
}

func TestInputFile_ParseFailure(t *testing.T) {
	files := map[string]string{
		"cards.txt": "Card 1: 1 2 | 3\nCard 2 4 | 5\n",
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{Puzzles: []string{"day4"}, InputPath: "cards.txt"})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "line 2")
	assert.Empty(t, result.Output)
}

func TestSampleMode_AllPuzzlesVerify(t *testing.T) {
	result := testutil.RunIntegrationTest(t, nil, app.Config{Sample: true})

	require.NoError(t, result.Err)
	for _, name := range []string{"day1", "day2", "day3", "day4"} {
		testutil.AssertPuzzleSolved(t, result, name)
	}
}

type incompleteModule struct{}

func (incompleteModule) Register(r *registry.Registry) {
	r.RegisterPuzzle("day2", &registry.Puzzle{Day: 2, Title: "half done"})
}

func TestStartup_BrokenRegistry(t *testing.T) {
	result := testutil.RunIntegrationTest(t, nil, app.Config{}, incompleteModule{})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "application startup panicked")
	assert.Contains(t, result.Err.Error(), "part 1 has no solver")
}
