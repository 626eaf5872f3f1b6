// internal/domain/goal.go
package domain

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalCategory groups goals on the goals page.
type GoalCategory string

const (
	GoalCategoryFitness     GoalCategory = "fitness"
	GoalCategoryHealth      GoalCategory = "health"
	GoalCategoryPerformance GoalCategory = "performance"
)

// GoalStatus tracks the goal lifecycle.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// GoalPriority is informational only.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// Goal is a measurable target owned by a user.
type Goal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Category     GoalCategory       `bson:"category" json:"category"`
	TargetValue  float64            `bson:"targetValue" json:"targetValue"`
	CurrentValue float64            `bson:"currentValue" json:"currentValue"`
	Unit         string             `bson:"unit" json:"unit"`
	Deadline     time.Time          `bson:"deadline" json:"deadline"`
	Status       GoalStatus         `bson:"status" json:"status"`
	Priority     GoalPriority       `bson:"priority" json:"priority"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProgressPercent is current/target as a percentage capped at 100.
func (g *Goal) ProgressPercent() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	return math.Min(g.CurrentValue/g.TargetValue*100, 100)
}

// DaysLeft counts whole days until the deadline, rounding partial days up. Negative when overdue.
func (g *Goal) DaysLeft(now time.Time) int {
	return int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
}

// IsReached reports whether the current value has met the target.
func (g *Goal) IsReached() bool {
	return g.CurrentValue >= g.TargetValue
}
