package domain

import (
	"fmt"
	"math"
	"slices"
)

type UnitSystem string

const (
	UnitSystemMetric   UnitSystem = "metric"
	UnitSystemImperial UnitSystem = "imperial"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type FitnessLevel string

const (
	FitnessLevelBeginner     FitnessLevel = "beginner"
	FitnessLevelIntermediate FitnessLevel = "intermediate"
	FitnessLevelAdvanced     FitnessLevel = "advanced"
)

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// FitnessGoalOption is one of the fixed goals a user can mark on their profile.
type FitnessGoalOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FitnessGoalOptions lists the profile goals in display order.
var FitnessGoalOptions = []FitnessGoalOption{
	{ID: "weight_loss", Label: "Weight Loss"},
	{ID: "muscle_gain", Label: "Muscle Gain"},
	{ID: "endurance", Label: "Endurance"},
	{ID: "strength", Label: "Strength"},
	{ID: "flexibility", Label: "Flexibility"},
	{ID: "general_fitness", Label: "General Fitness"},
}

func IsFitnessGoal(id string) bool {
	return slices.ContainsFunc(FitnessGoalOptions, func(o FitnessGoalOption) bool { return o.ID == id })
}

// Profile holds the body measurements and training preferences of a user.
// Height and weight are always stored in metric units; UnitSystem only
// controls how they are displayed.
type Profile struct {
	Age           int           `bson:"age,omitempty" json:"age,omitempty"`
	Gender        Gender        `bson:"gender,omitempty" json:"gender,omitempty"`
	HeightCm      float64       `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	WeightKg      float64       `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	UnitSystem    UnitSystem    `bson:"unitSystem,omitempty" json:"unitSystem"`
	FitnessLevel  FitnessLevel  `bson:"fitnessLevel,omitempty" json:"fitnessLevel,omitempty"`
	ActivityLevel ActivityLevel `bson:"activityLevel,omitempty" json:"activityLevel,omitempty"`
	FitnessGoals  []string      `bson:"fitnessGoals" json:"fitnessGoals"`
}

// ToggleFitnessGoal adds id to the goal set or removes it, reporting whether it
// is selected afterwards. Order of the remaining goals is kept.
func (p *Profile) ToggleFitnessGoal(id string) bool {
	if i := slices.Index(p.FitnessGoals, id); i >= 0 {
		p.FitnessGoals = slices.Delete(p.FitnessGoals, i, i+1)
		return false
	}
	p.FitnessGoals = append(p.FitnessGoals, id)
	return true
}

// FormatHeight renders a height for the unit system: "175 cm" or 5'9".
func FormatHeight(cm float64, units UnitSystem) string {
	if cm <= 0 {
		return ""
	}
	if units != UnitSystemImperial {
		return fmt.Sprintf("%d cm", int(math.Round(cm)))
	}
	feet, inches := FeetAndInches(cm)
	return fmt.Sprintf("%d'%d\"", feet, inches)
}

// FormatWeight renders a weight for the unit system: "70 kg" or "154 lbs".
func FormatWeight(kg float64, units UnitSystem) string {
	if kg <= 0 {
		return ""
	}
	if units != UnitSystemImperial {
		return fmt.Sprintf("%d kg", int(math.Round(kg)))
	}
	return fmt.Sprintf("%d lbs", Pounds(kg))
}

// FeetAndInches converts centimeters to whole feet and rounded inches. A
// rounding up to 12 inches carries into the feet.
func FeetAndInches(cm float64) (feet, inches int) {
	totalInches := int(math.Round(cm / 2.54))
	return totalInches / 12, totalInches % 12
}

func Pounds(kg float64) int {
	return int(math.Round(kg * 2.205))
}
