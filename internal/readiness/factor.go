// internal/readiness/factor.go
package readiness

// FactorID identifies one of the five daily check-in factors.
type FactorID string

const (
	FactorSleep    FactorID = "sleep"
	FactorEnergy   FactorID = "energy"
	FactorMood     FactorID = "mood"
	FactorSoreness FactorID = "soreness"
	FactorStress   FactorID = "stress"
)

// Rating bounds shared by every factor.
const (
	MinRating = 1
	MaxRating = 5
)

// FactorIDs lists the factors in their canonical order.
var FactorIDs = []FactorID{FactorSleep, FactorEnergy, FactorMood, FactorSoreness, FactorStress}

// Factor is a single rated dimension of a check-in.
type Factor struct {
	ID          FactorID `json:"id" bson:"id"`
	Name        string   `json:"name,omitempty" bson:"name,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Value       int      `json:"value" bson:"value"`
}

type factorInfo struct {
	name         string
	description  string
	defaultValue int
	tips         []string
}

var factorTable = map[FactorID]factorInfo{
	FactorSleep: {
		name:         "Sleep Quality",
		description:  "How well did you sleep last night?",
		defaultValue: 3,
		tips: []string{
			"Aim for 7-9 hours of sleep",
			"Keep a consistent sleep schedule",
			"Avoid screens before bedtime",
		},
	},
	FactorEnergy: {
		name:         "Energy Level",
		description:  "How energetic do you feel right now?",
		defaultValue: 4,
		tips: []string{
			"Stay hydrated throughout the day",
			"Eat balanced meals",
			"Take short breaks during work",
		},
	},
	FactorMood: {
		name:         "Mood",
		description:  "How is your overall mood today?",
		defaultValue: 4,
		tips: []string{
			"Practice gratitude",
			"Connect with friends",
			"Do activities you enjoy",
		},
	},
	FactorSoreness: {
		name:         "Muscle Soreness",
		description:  "How sore are your muscles? (1 = very sore, 5 = no soreness)",
		defaultValue: 3,
		tips: []string{
			"Do light stretching",
			"Take a warm bath",
			"Consider a rest day if very sore",
		},
	},
	FactorStress: {
		name:         "Stress Level",
		description:  "How stressed do you feel? (1 = very stressed, 5 = no stress)",
		defaultValue: 3,
		tips: []string{
			"Practice deep breathing",
			"Try meditation",
			"Take a short walk",
		},
	},
}

// IsKnown reports whether id is one of the five check-in factors.
func (id FactorID) IsKnown() bool {
	_, ok := factorTable[id]
	return ok
}

// DefaultFactors returns a fresh check-in with every factor at its starting value.
func DefaultFactors() []Factor {
	factors := make([]Factor, 0, len(FactorIDs))
	for _, id := range FactorIDs {
		info := factorTable[id]
		factors = append(factors, Factor{
			ID:          id,
			Name:        info.name,
			Description: info.description,
			Value:       info.defaultValue,
		})
	}
	return factors
}

// TipsFor returns the improvement tips for a factor, or nil for an unknown id.
// The returned slice is a copy.
func TipsFor(id FactorID) []string {
	info, ok := factorTable[id]
	if !ok {
		return nil
	}
	return append([]string(nil), info.tips...)
}

// ImprovementTips returns the tip list for every factor rated 2 or lower.
func ImprovementTips(factors []Factor) map[FactorID][]string {
	tips := make(map[FactorID][]string)
	for _, f := range factors {
		if f.Value <= 2 && f.ID.IsKnown() {
			tips[f.ID] = TipsFor(f.ID)
		}
	}
	return tips
}
