package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solveConst(n int) SolveFunc {
	return func(context.Context, string) (int, error) { return n, nil }
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"day1", "day1"},
		{"1", "day1"},
		{"03", "day3"},
		{"Day04", "day4"},
		{" day2 ", "day2"},
		{"day", "day"},
		{"+3", "+3"},
		{"0", "0"},
		{"custom", "custom"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.in))
		})
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()
	r.RegisterPuzzle("day2", &Puzzle{Day: 2, Part1: solveConst(1), Part2: solveConst(2)})
	r.RegisterPuzzle("day10", &Puzzle{Day: 10, Part1: solveConst(1), Part2: solveConst(2)})
	r.RegisterPuzzle("day1", &Puzzle{Day: 1, Part1: solveConst(1), Part2: solveConst(2)})

	p, ok := r.Lookup("02")
	require.True(t, ok)
	assert.Equal(t, 2, p.Day)
	assert.NotNil(t, p.Part(1))
	assert.NotNil(t, p.Part(2))
	assert.Nil(t, p.Part(3))

	_, ok = r.Lookup("day7")
	assert.False(t, ok)

	assert.Equal(t, []string{"day1", "day2", "day10"}, r.Names(), "names are ordered by day, not lexically")
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := New()
	r.RegisterPuzzle("day1", &Puzzle{Day: 1})

	assert.PanicsWithValue(t, "puzzle with name 'day1' already registered", func() {
		r.RegisterPuzzle("day1", &Puzzle{Day: 1})
	})
}

func TestValidateRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("complete puzzle passes", func(t *testing.T) {
		r := New()
		r.RegisterPuzzle("day1", &Puzzle{Day: 1, Part1: solveConst(0), Part2: solveConst(0)})
		require.NoError(t, r.ValidateRegistry(ctx))
	})

	t.Run("missing part fails", func(t *testing.T) {
		r := New()
		r.RegisterPuzzle("day1", &Puzzle{Day: 1, Part1: solveConst(0)})
		err := r.ValidateRegistry(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "part 2 has no solver")
	})

	t.Run("name and day disagree", func(t *testing.T) {
		r := New()
		r.RegisterPuzzle("day2", &Puzzle{Day: 3, Part1: solveConst(0), Part2: solveConst(0)})
		err := r.ValidateRegistry(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected name 'day3'")
	})

	t.Run("input data is not checked", func(t *testing.T) {
		r := New()
		r.RegisterPuzzle("day42", &Puzzle{Day: 42, Part1: solveConst(0), Part2: solveConst(0)})
		require.NoError(t, r.ValidateRegistry(ctx))
	})
}
