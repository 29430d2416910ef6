package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollkeeper/roll-api/internal/dice"
)

// scriptedRoller returns a fixed sequence of values
type scriptedRoller struct {
	values []int
	next   int
}

func (r *scriptedRoller) Roll(sides int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

func mustParse(t *testing.T, text string) *dice.Expression {
	t.Helper()
	expr, err := dice.Parse(text)
	require.NoError(t, err)
	return expr
}

func TestEvaluatePlainRoll(t *testing.T) {
	roller := &scriptedRoller{values: []int{3, 5, 6, 6}}

	out := dice.Evaluate(mustParse(t, "2d6+3-1"), roller)

	assert.Equal(t, []int{3, 5}, out.Rolls)
	// The second set is always drawn, even without a flag
	assert.Equal(t, []int{6, 6}, out.Rerolls)
	// ...but never chosen
	assert.Equal(t, []int{3, 5}, out.Chosen)
	assert.Equal(t, 3+5+3-1, out.Total)
}

func TestEvaluateAdvantage(t *testing.T) {
	testCases := []struct {
		name   string
		values []int
		chosen []int
		total  int
	}{
		{
			name:   "reroll wins strictly",
			values: []int{2, 3, 6, 5},
			chosen: []int{6, 5},
			total:  11,
		},
		{
			name:   "tie keeps primary",
			values: []int{4, 4, 3, 5},
			chosen: []int{4, 4},
			total:  8,
		},
		{
			name:   "reroll loses",
			values: []int{6, 6, 1, 1},
			chosen: []int{6, 6},
			total:  12,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := dice.Evaluate(mustParse(t, "2d6 A"), &scriptedRoller{values: tc.values})
			assert.Equal(t, tc.chosen, out.Chosen)
			assert.Equal(t, tc.total, out.Total)
		})
	}
}

func TestEvaluateDisadvantage(t *testing.T) {
	testCases := []struct {
		name   string
		values []int
		chosen []int
	}{
		{
			name:   "reroll loses strictly and is chosen",
			values: []int{6, 6, 1, 2},
			chosen: []int{1, 2},
		},
		{
			name:   "tie keeps primary",
			values: []int{3, 3, 2, 4},
			chosen: []int{3, 3},
		},
		{
			name:   "reroll higher keeps primary",
			values: []int{1, 1, 6, 6},
			chosen: []int{1, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := dice.Evaluate(mustParse(t, "2d6 D"), &scriptedRoller{values: tc.values})
			assert.Equal(t, tc.chosen, out.Chosen)
		})
	}
}

func TestEvaluateComparisonProperty(t *testing.T) {
	// Under A the chosen total never drops below the primary total;
	// under D it never exceeds it; without a flag the primary set is
	// always chosen.
	roller := dice.NewSeededRoller(99)
	adv := mustParse(t, "3d8 A")
	dis := mustParse(t, "3d8 D")
	plain := mustParse(t, "3d8")

	for i := 0; i < 500; i++ {
		out := dice.Evaluate(adv, roller)
		assert.GreaterOrEqual(t, out.Total, sumOf(out.Rolls))

		out = dice.Evaluate(dis, roller)
		assert.LessOrEqual(t, out.Total, sumOf(out.Rolls))

		out = dice.Evaluate(plain, roller)
		assert.Equal(t, out.Rolls, out.Chosen)
	}
}

func TestEvaluateZeroCount(t *testing.T) {
	out := dice.Evaluate(mustParse(t, "0d6+3"), &scriptedRoller{values: []int{1}})

	assert.Empty(t, out.Rolls)
	assert.Empty(t, out.Rerolls)
	assert.Equal(t, 3, out.Total)
}

func TestEvaluateBounds(t *testing.T) {
	roller := dice.NewRoller()
	expr := mustParse(t, "1d6")

	for i := 0; i < 1000; i++ {
		out := dice.Evaluate(expr, roller)
		require.Len(t, out.Rolls, 1)
		assert.GreaterOrEqual(t, out.Rolls[0], 1)
		assert.LessOrEqual(t, out.Rolls[0], 6)
	}
}

func TestSeededRollerIsReproducible(t *testing.T) {
	a := dice.NewSeededRoller(7)
	b := dice.NewSeededRoller(7)
	expr := mustParse(t, "4d10+2")

	for i := 0; i < 20; i++ {
		outA := dice.Evaluate(expr, a)
		outB := dice.Evaluate(expr, b)
		assert.Equal(t, outA.Rolls, outB.Rolls)
		assert.Equal(t, outA.Rerolls, outB.Rerolls)
		assert.Equal(t, outA.Total, outB.Total)
	}
}

func TestFlagDoesNotChangeSourceConsumption(t *testing.T) {
	// Flagged and plain rolls draw the same number of values, so a
	// seeded source yields identical sets for "2d6" and "2d6 A".
	plain := dice.Evaluate(mustParse(t, "2d6"), dice.NewSeededRoller(42))
	flagged := dice.Evaluate(mustParse(t, "2d6 A"), dice.NewSeededRoller(42))

	assert.Equal(t, plain.Rolls, flagged.Rolls)
	assert.Equal(t, plain.Rerolls, flagged.Rerolls)
}

func sumOf(set []int) int {
	total := 0
	for _, v := range set {
		total += v
	}
	return total
}
