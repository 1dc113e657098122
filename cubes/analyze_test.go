package cubes

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGames(t *testing.T) []Game {
	t.Helper()
	games, err := ParseGames([]byte(sampleInput), "")
	require.NoError(t, err)
	return games
}

func TestSumFeasible_Sample(t *testing.T) {
	sum, err := SumFeasible(sampleGames(t), Rule{MaxRed: 12, MaxGreen: 13, MaxBlue: 14})
	require.NoError(t, err)
	assert.Equal(t, uint64(8), sum)
}

func TestSumPower_Sample(t *testing.T) {
	sum, err := SumPower(sampleGames(t))
	require.NoError(t, err)
	assert.Equal(t, uint64(2286), sum)
}

func TestMinimumCapacity_Sample(t *testing.T) {
	games := sampleGames(t)

	want := []struct {
		minimum Set
		power   uint64
	}{
		{Set{Red: 4, Green: 2, Blue: 6}, 48},
		{Set{Red: 1, Green: 3, Blue: 4}, 12},
		{Set{Red: 20, Green: 13, Blue: 6}, 1560},
		{Set{Red: 14, Green: 3, Blue: 15}, 630},
		{Set{Red: 6, Green: 3, Blue: 2}, 36},
	}

	for i, w := range want {
		assert.Equal(t, w.minimum, games[i].MinimumCapacity(), "game %d", games[i].ID)
		power, err := games[i].Power()
		require.NoError(t, err)
		assert.Equal(t, w.power, power, "game %d", games[i].ID)
	}
}

func TestAnalyze_Sample(t *testing.T) {
	report, err := Analyze(sampleGames(t), DefaultRule)
	require.NoError(t, err)

	assert.Equal(t, uint64(8), report.FeasibleSum)
	assert.Equal(t, uint64(2286), report.PowerSum)
	assert.Equal(t, DefaultRule, report.Rule)
	require.Len(t, report.Games, 5)

	var feasible []uint32
	for _, g := range report.Games {
		if g.Feasible {
			feasible = append(feasible, g.ID)
		}
	}
	assert.Equal(t, []uint32{1, 2, 5}, feasible)
}

func TestSolve_Sample(t *testing.T) {
	report, err := Solve(sampleInput, DefaultRule)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), report.FeasibleSum)
	assert.Equal(t, uint64(2286), report.PowerSum)

	_, err = Solve("Game X: 3 blue", DefaultRule)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestAnalyses_IgnoreRecordOrder(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(sampleInput), "\n")

	permutations := [][]int{
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 2, 3, 4, 0},
	}
	for _, perm := range permutations {
		shuffled := make([]string, len(perm))
		for i, j := range perm {
			shuffled[i] = lines[j]
		}

		report, err := Solve(strings.Join(shuffled, "\n"), DefaultRule)
		require.NoError(t, err)
		assert.Equal(t, uint64(8), report.FeasibleSum, "order %v", perm)
		assert.Equal(t, uint64(2286), report.PowerSum, "order %v", perm)
	}
}

func TestGameWithoutSets(t *testing.T) {
	g := Game{ID: 42}

	assert.True(t, g.FeasibleUnder(Rule{}))
	assert.Equal(t, Set{}, g.MinimumCapacity())

	power, err := g.Power()
	require.NoError(t, err)
	assert.Zero(t, power)

	sum, err := SumFeasible([]Game{g}, Rule{})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), sum)
}

func TestRuleAllows_Boundary(t *testing.T) {
	rule := Rule{MaxRed: 12, MaxGreen: 13, MaxBlue: 14}
	exact := Set{Red: 12, Green: 13, Blue: 14}

	assert.True(t, rule.Allows(exact))
	assert.True(t, Game{ID: 1, Sets: []Set{exact}}.FeasibleUnder(rule))

	for _, c := range Colors() {
		over := exact.With(c, exact.Amount(c)+1)
		assert.False(t, rule.Allows(over), "one extra %s", c)
		assert.False(t, Game{ID: 1, Sets: []Set{exact, over}}.FeasibleUnder(rule), "one extra %s", c)
	}
}

func TestPowerOverflow(t *testing.T) {
	huge := Set{Red: math.MaxUint32, Green: math.MaxUint32, Blue: math.MaxUint32}
	_, err := huge.Power()
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = SumPower([]Game{{ID: 1, Sets: []Set{huge}}})
	assert.ErrorIs(t, err, ErrOverflow)

	// Each power fits in a uint64, their sum does not.
	big := Set{Red: math.MaxUint32, Green: math.MaxUint32, Blue: 1}
	games := []Game{{ID: 1, Sets: []Set{big}}, {ID: 2, Sets: []Set{big}}}
	_, err = SumPower(games)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Analyze(games, DefaultRule)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestSetMax(t *testing.T) {
	a := Set{Red: 1, Green: 5, Blue: 0}
	b := Set{Red: 3, Green: 2, Blue: 7}
	assert.Equal(t, Set{Red: 3, Green: 5, Blue: 7}, a.Max(b))
	assert.Equal(t, a.Max(b), b.Max(a))
}

func TestNewSet(t *testing.T) {
	s, err := NewSet(Cube{Color: Blue, Amount: 3}, Cube{Color: Red, Amount: 4})
	require.NoError(t, err)
	assert.Equal(t, Set{Red: 4, Blue: 3}, s)
	assert.Equal(t, []Cube{{Color: Red, Amount: 4}, {Color: Blue, Amount: 3}}, s.Cubes())

	_, err = NewSet(Cube{Color: Green, Amount: 1}, Cube{Color: Green, Amount: 2})
	assert.ErrorIs(t, err, ErrDuplicateColor)

	empty, err := NewSet()
	require.NoError(t, err)
	assert.Equal(t, Set{}, empty)
}

func TestColor(t *testing.T) {
	for _, c := range Colors() {
		parsed, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := ParseColor("Red")
	assert.ErrorIs(t, err, ErrUnknownColor)

	assert.Equal(t, "Color(7)", Color(7).String())
	assert.Panics(t, func() { Set{}.Amount(Color(7)) })
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "12 red, 13 green, 14 blue", DefaultRule.String())
	assert.Equal(t, Set{Red: 12, Green: 13, Blue: 14}, DefaultRule.Capacity())
}
