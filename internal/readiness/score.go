// internal/readiness/score.go
package readiness

import (
	"errors"
	"fmt"
)

var (
	ErrFactorCount      = errors.New("readiness: exactly five ratings are required")
	ErrRatingOutOfRange = errors.New("readiness: rating must be between 1 and 5")
	ErrUnknownFactor    = errors.New("readiness: unknown factor")
	ErrDuplicateFactor  = errors.New("readiness: factor rated more than once")
)

// Level is the qualitative readiness classification.
type Level string

const (
	LevelExcellent Level = "Excellent"
	LevelGood      Level = "Good"
	LevelFair      Level = "Fair"
	LevelPoor      Level = "Poor"
)

// Recommendation is the workout intensity suggested for a score.
type Recommendation struct {
	Tier        string   `json:"tier" bson:"tier"`
	Description string   `json:"description" bson:"description"`
	Icon        string   `json:"icon" bson:"icon"`
	Suggestions []string `json:"suggestions" bson:"suggestions"`
}

// Result bundles everything derived from one check-in.
type Result struct {
	Score          int                   `json:"score"`
	Level          Level                 `json:"level"`
	Recommendation Recommendation        `json:"recommendation"`
	Tips           map[FactorID][]string `json:"tips,omitempty"`
}

// Thresholds are lower bounds, checked top-down.
const (
	excellentFloor = 80
	goodFloor      = 60
	fairFloor      = 40
)

var recommendations = []struct {
	floor int
	rec   Recommendation
}{
	{excellentFloor, Recommendation{
		Tier:        "High Intensity",
		Description: "You're ready for challenging workouts today!",
		Icon:        "🔥",
		Suggestions: []string{"HIIT training", "Heavy strength training", "Sport activities"},
	}},
	{goodFloor, Recommendation{
		Tier:        "Moderate Intensity",
		Description: "Moderate workouts will serve you well today.",
		Icon:        "💪",
		Suggestions: []string{"Moderate cardio", "Regular strength training", "Circuit training"},
	}},
	{fairFloor, Recommendation{
		Tier:        "Light Activity",
		Description: "Consider lighter activities today.",
		Icon:        "🚶",
		Suggestions: []string{"Walking", "Light yoga", "Stretching", "Easy cycling"},
	}},
	{0, Recommendation{
		Tier:        "Rest & Recovery",
		Description: "Focus on recovery today.",
		Icon:        "🛌",
		Suggestions: []string{"Gentle stretching", "Meditation", "Light walking", "Rest day"},
	}},
}

// Score converts five ratings into a percentage of the maximum total.
func Score(ratings []int) (int, error) {
	if len(ratings) != len(FactorIDs) {
		return 0, fmt.Errorf("%w: got %d", ErrFactorCount, len(ratings))
	}
	total := 0
	for i, r := range ratings {
		if r < MinRating || r > MaxRating {
			return 0, fmt.Errorf("%w: rating %d is %d", ErrRatingOutOfRange, i+1, r)
		}
		total += r
	}
	maxTotal := len(ratings) * MaxRating
	// integer round-half-up of 100*total/max
	return (200*total + maxTotal) / (2 * maxTotal), nil
}

// LevelFor classifies a score.
func LevelFor(score int) Level {
	switch {
	case score >= excellentFloor:
		return LevelExcellent
	case score >= goodFloor:
		return LevelGood
	case score >= fairFloor:
		return LevelFair
	default:
		return LevelPoor
	}
}

// RecommendationFor returns the intensity tier for a score.
func RecommendationFor(score int) Recommendation {
	for _, r := range recommendations {
		if score >= r.floor {
			return copyRecommendation(r.rec)
		}
	}
	return copyRecommendation(recommendations[len(recommendations)-1].rec)
}

func copyRecommendation(r Recommendation) Recommendation {
	r.Suggestions = append([]string(nil), r.Suggestions...)
	return r
}

// Evaluate validates a full factor set and computes the readiness result.
// Factors may arrive in any order but each of the five ids must appear once.
func Evaluate(factors []Factor) (Result, error) {
	ordered, err := Canonical(factors)
	if err != nil {
		return Result{}, err
	}
	ratings := make([]int, len(ordered))
	for i, f := range ordered {
		ratings[i] = f.Value
	}
	score, err := Score(ratings)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Score:          score,
		Level:          LevelFor(score),
		Recommendation: RecommendationFor(score),
		Tips:           ImprovementTips(ordered),
	}, nil
}

// Canonical returns the factors sorted into canonical order with names and
// descriptions filled in.
func Canonical(factors []Factor) ([]Factor, error) {
	if len(factors) != len(FactorIDs) {
		return nil, fmt.Errorf("%w: got %d", ErrFactorCount, len(factors))
	}
	byID := make(map[FactorID]Factor, len(factors))
	for _, f := range factors {
		if !f.ID.IsKnown() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFactor, f.ID)
		}
		if _, dup := byID[f.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFactor, f.ID)
		}
		byID[f.ID] = f
	}
	ordered := make([]Factor, 0, len(FactorIDs))
	for _, id := range FactorIDs {
		f := byID[id]
		info := factorTable[id]
		f.Name = info.name
		f.Description = info.description
		ordered = append(ordered, f)
	}
	return ordered, nil
}
