package service_test

import (
	"context"
	"testing"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/events"
	"alcyxob/fitness-tracker/internal/repository/memory"
	"alcyxob/fitness-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validGoal() service.NewGoal {
	return service.NewGoal{
		Title:       "Run a 5K",
		Description: "Complete a 5K run without stopping",
		Category:    domain.GoalCategoryFitness,
		TargetValue: 5,
		Unit:        "km",
		Deadline:    domain.NewDate(time.Now().Add(30 * 24 * time.Hour)),
		Priority:    domain.GoalPriorityHigh,
	}
}

func TestCreateGoal(t *testing.T) {
	ctx := context.Background()
	goals := service.NewGoalService(memory.NewGoalRepository(), nil)
	user := primitive.NewObjectID()

	in := validGoal()
	in.Category = ""
	in.Priority = ""
	goal, err := goals.CreateGoal(ctx, user, in)
	require.NoError(t, err)
	assert.False(t, goal.ID.IsZero())
	assert.Equal(t, domain.GoalStatusActive, goal.Status)
	assert.Equal(t, 0.0, goal.CurrentValue)
	assert.Equal(t, domain.GoalCategoryFitness, goal.Category)
	assert.Equal(t, domain.GoalPriorityMedium, goal.Priority)
}

func TestCreateGoal_Validation(t *testing.T) {
	ctx := context.Background()
	goals := service.NewGoalService(memory.NewGoalRepository(), nil)
	user := primitive.NewObjectID()

	tests := []struct {
		name   string
		mutate func(*service.NewGoal)
	}{
		{"empty title", func(g *service.NewGoal) { g.Title = "   " }},
		{"zero target", func(g *service.NewGoal) { g.TargetValue = 0 }},
		{"negative target", func(g *service.NewGoal) { g.TargetValue = -3 }},
		{"empty unit", func(g *service.NewGoal) { g.Unit = "" }},
		{"no deadline", func(g *service.NewGoal) { g.Deadline = domain.Date{} }},
		{"bad category", func(g *service.NewGoal) { g.Category = "wealth" }},
		{"bad priority", func(g *service.NewGoal) { g.Priority = "urgent" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validGoal()
			tt.mutate(&in)
			_, err := goals.CreateGoal(ctx, user, in)
			assert.ErrorIs(t, err, service.ErrGoalValidation)
		})
	}

	// nothing was persisted
	list, err := goals.ListGoals(ctx, user, service.GoalTabAll)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateProgress_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	pub := newRecordingPublisher()
	goals := service.NewGoalService(memory.NewGoalRepository(), pub)
	user := primitive.NewObjectID()

	goal, err := goals.CreateGoal(ctx, user, validGoal())
	require.NoError(t, err)

	goal, err = goals.UpdateProgress(ctx, user, goal.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusActive, goal.Status)
	assert.Equal(t, 3.0, goal.CurrentValue)

	goal, err = goals.UpdateProgress(ctx, user, goal.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusCompleted, goal.Status)

	select {
	case e := <-pub.ch:
		assert.Equal(t, events.GoalCompleted, e.name)
		assert.Equal(t, user.Hex(), e.key)
	case <-time.After(2 * time.Second):
		t.Fatal("goal.completed was not published")
	}

	// already completed, no second event
	goal, err = goals.UpdateProgress(ctx, user, goal.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 5.0, goal.CurrentValue, "clamped to target")
	assert.Equal(t, domain.GoalStatusCompleted, goal.Status)

	goal, err = goals.UpdateProgress(ctx, user, goal.ID, -2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, goal.CurrentValue, "clamped to zero")
	assert.Equal(t, domain.GoalStatusActive, goal.Status)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, pub.count())
}

func TestUpdateProgress_PausedGoal(t *testing.T) {
	ctx := context.Background()
	goals := service.NewGoalService(memory.NewGoalRepository(), events.NoopPublisher{})
	user := primitive.NewObjectID()

	goal, err := goals.CreateGoal(ctx, user, validGoal())
	require.NoError(t, err)

	goal, err = goals.SetStatus(ctx, user, goal.ID, domain.GoalStatusPaused)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusPaused, goal.Status)

	goal, err = goals.UpdateProgress(ctx, user, goal.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusPaused, goal.Status)

	goal, err = goals.SetStatus(ctx, user, goal.ID, domain.GoalStatusActive)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusActive, goal.Status)

	goal, err = goals.UpdateProgress(ctx, user, goal.ID, 5)
	require.NoError(t, err)
	goal, err = goals.SetStatus(ctx, user, goal.ID, domain.GoalStatusPaused)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusCompleted, goal.Status, "a reached goal cannot be paused")

	_, err = goals.SetStatus(ctx, user, goal.ID, domain.GoalStatusCompleted)
	assert.ErrorIs(t, err, service.ErrGoalValidation)
}

func TestGoal_NotFound(t *testing.T) {
	ctx := context.Background()
	goals := service.NewGoalService(memory.NewGoalRepository(), nil)
	owner, other := primitive.NewObjectID(), primitive.NewObjectID()

	goal, err := goals.CreateGoal(ctx, owner, validGoal())
	require.NoError(t, err)

	_, err = goals.UpdateProgress(ctx, owner, primitive.NewObjectID(), 1)
	assert.ErrorIs(t, err, service.ErrGoalNotFound)

	_, err = goals.UpdateProgress(ctx, other, goal.ID, 1)
	assert.ErrorIs(t, err, service.ErrGoalNotFound)
	assert.ErrorIs(t, goals.DeleteGoal(ctx, other, goal.ID), service.ErrGoalNotFound)

	require.NoError(t, goals.DeleteGoal(ctx, owner, goal.ID))
	assert.ErrorIs(t, goals.DeleteGoal(ctx, owner, goal.ID), service.ErrGoalNotFound)
}

func TestListGoalsAndStats(t *testing.T) {
	ctx := context.Background()
	goals := service.NewGoalService(memory.NewGoalRepository(), nil)
	user := primitive.NewObjectID()

	done, err := goals.CreateGoal(ctx, user, validGoal())
	require.NoError(t, err)
	_, err = goals.UpdateProgress(ctx, user, done.ID, 5)
	require.NoError(t, err)

	half := validGoal()
	half.Title = "Sleep 8 hours"
	half.TargetValue = 8
	half.Unit = "hours"
	halfGoal, err := goals.CreateGoal(ctx, user, half)
	require.NoError(t, err)
	_, err = goals.UpdateProgress(ctx, user, halfGoal.ID, 4)
	require.NoError(t, err)

	paused, err := goals.CreateGoal(ctx, user, validGoal())
	require.NoError(t, err)
	_, err = goals.SetStatus(ctx, user, paused.ID, domain.GoalStatusPaused)
	require.NoError(t, err)

	all, err := goals.ListGoals(ctx, user, "all")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := goals.ListGoals(ctx, user, "active")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Sleep 8 hours", active[0].Title)
	assert.Equal(t, 50.0, active[0].ProgressPercent)
	assert.InDelta(t, 30, active[0].DaysLeft, 1)

	completed, err := goals.ListGoals(ctx, user, "completed")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, 100.0, completed[0].ProgressPercent)

	unknown, err := goals.ListGoals(ctx, user, "archived")
	require.NoError(t, err)
	assert.Equal(t, active, unknown)

	stats, err := goals.Stats(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, service.GoalStats{Total: 3, Active: 1, Completed: 1, CompletionRate: 33}, stats)

	empty, err := goals.Stats(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, service.GoalStats{}, empty)
}

func TestGoal_DerivedValues(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	g := domain.Goal{TargetValue: 10, CurrentValue: 12.5, Deadline: now.Add(36 * time.Hour)}
	assert.Equal(t, 100.0, g.ProgressPercent())
	assert.Equal(t, 2, g.DaysLeft(now))

	g.CurrentValue = 2.5
	assert.Equal(t, 25.0, g.ProgressPercent())

	g.Deadline = now.Add(-30 * time.Hour)
	assert.Equal(t, -1, g.DaysLeft(now))
}
