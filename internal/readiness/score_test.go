package readiness_test

import (
	"testing"

	"alcyxob/fitness-tracker/internal/readiness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		ratings   []int
		wantScore int
		wantLevel readiness.Level
		wantTier  string
	}{
		{"all minimum", []int{1, 1, 1, 1, 1}, 20, readiness.LevelPoor, "Rest & Recovery"},
		{"all maximum", []int{5, 5, 5, 5, 5}, 100, readiness.LevelExcellent, "High Intensity"},
		{"mixed good", []int{3, 4, 4, 3, 3}, 68, readiness.LevelGood, "Moderate Intensity"},
		{"all three", []int{3, 3, 3, 3, 3}, 60, readiness.LevelGood, "Moderate Intensity"},
		{"fair", []int{2, 2, 2, 2, 2}, 40, readiness.LevelFair, "Light Activity"},
		{"just below fair", []int{2, 2, 2, 2, 1}, 36, readiness.LevelPoor, "Rest & Recovery"},
		{"excellent floor", []int{4, 4, 4, 4, 4}, 80, readiness.LevelExcellent, "High Intensity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := readiness.Score(tt.ratings)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantLevel, readiness.LevelFor(score))
			assert.Equal(t, tt.wantTier, readiness.RecommendationFor(score).Tier)
		})
	}
}

func TestScore_RangeAndMonotonic(t *testing.T) {
	// walk every tuple in [1,5]^5
	ratings := make([]int, 5)
	var walk func(pos int)
	walk = func(pos int) {
		if pos == len(ratings) {
			score, err := readiness.Score(ratings)
			require.NoError(t, err)
			require.GreaterOrEqual(t, score, 0)
			require.LessOrEqual(t, score, 100)

			for i := range ratings {
				if ratings[i] == readiness.MaxRating {
					continue
				}
				bumped := append([]int(nil), ratings...)
				bumped[i]++
				higher, err := readiness.Score(bumped)
				require.NoError(t, err)
				require.GreaterOrEqual(t, higher, score, "ratings %v -> %v", ratings, bumped)
			}
			return
		}
		for v := readiness.MinRating; v <= readiness.MaxRating; v++ {
			ratings[pos] = v
			walk(pos + 1)
		}
	}
	walk(0)
}

func TestScore_InvalidInput(t *testing.T) {
	_, err := readiness.Score([]int{3, 3, 3, 3})
	assert.ErrorIs(t, err, readiness.ErrFactorCount)

	_, err = readiness.Score([]int{3, 3, 3, 3, 6})
	assert.ErrorIs(t, err, readiness.ErrRatingOutOfRange)

	_, err = readiness.Score([]int{0, 3, 3, 3, 3})
	assert.ErrorIs(t, err, readiness.ErrRatingOutOfRange)
}

func TestRecommendationFor_ReturnsCopy(t *testing.T) {
	rec := readiness.RecommendationFor(90)
	rec.Suggestions[0] = "changed"
	assert.Equal(t, "HIIT training", readiness.RecommendationFor(90).Suggestions[0])
}

func TestEvaluate_DefaultFactors(t *testing.T) {
	result, err := readiness.Evaluate(readiness.DefaultFactors())
	require.NoError(t, err)
	assert.Equal(t, 68, result.Score)
	assert.Equal(t, readiness.LevelGood, result.Level)
	assert.Empty(t, result.Tips)
}

func TestEvaluate_AnyOrderAndTips(t *testing.T) {
	factors := []readiness.Factor{
		{ID: readiness.FactorStress, Value: 2},
		{ID: readiness.FactorSleep, Value: 1},
		{ID: readiness.FactorMood, Value: 5},
		{ID: readiness.FactorSoreness, Value: 3},
		{ID: readiness.FactorEnergy, Value: 4},
	}
	result, err := readiness.Evaluate(factors)
	require.NoError(t, err)
	assert.Equal(t, 60, result.Score)
	require.Len(t, result.Tips, 2)
	assert.Equal(t, []string{
		"Aim for 7-9 hours of sleep",
		"Keep a consistent sleep schedule",
		"Avoid screens before bedtime",
	}, result.Tips[readiness.FactorSleep])
	assert.Len(t, result.Tips[readiness.FactorStress], 3)
}

func TestEvaluate_Rejects(t *testing.T) {
	base := readiness.DefaultFactors()

	dup := append([]readiness.Factor(nil), base...)
	dup[1].ID = readiness.FactorSleep
	_, err := readiness.Evaluate(dup)
	assert.ErrorIs(t, err, readiness.ErrDuplicateFactor)

	unknown := append([]readiness.Factor(nil), base...)
	unknown[0].ID = "hydration"
	_, err = readiness.Evaluate(unknown)
	assert.ErrorIs(t, err, readiness.ErrUnknownFactor)

	_, err = readiness.Evaluate(base[:3])
	assert.ErrorIs(t, err, readiness.ErrFactorCount)

	outOfRange := append([]readiness.Factor(nil), base...)
	outOfRange[2].Value = 9
	_, err = readiness.Evaluate(outOfRange)
	assert.ErrorIs(t, err, readiness.ErrRatingOutOfRange)
}

func TestTipsFor(t *testing.T) {
	for _, id := range readiness.FactorIDs {
		assert.Len(t, readiness.TipsFor(id), 3, "factor %s", id)
	}
	assert.Nil(t, readiness.TipsFor("unknown"))
}
