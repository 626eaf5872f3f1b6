package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/events"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrGoalNotFound   = errors.New("goal not found")
	ErrGoalValidation = errors.New("goal validation failed")
)

// Goal list tabs.
const (
	GoalTabAll       = "all"
	GoalTabActive    = "active"
	GoalTabCompleted = "completed"
)

// NewGoal is the create-goal form.
type NewGoal struct {
	Title       string              `json:"title" validate:"required,max=200"`
	Description string              `json:"description" validate:"max=2000"`
	Category    domain.GoalCategory `json:"category" validate:"omitempty,oneof=fitness health performance"`
	TargetValue float64             `json:"targetValue" validate:"gt=0"`
	Unit        string              `json:"unit" validate:"required,max=50"`
	Deadline    domain.Date         `json:"deadline"`
	Priority    domain.GoalPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// GoalView adds the values the goals page derives from a goal.
type GoalView struct {
	domain.Goal
	ProgressPercent float64 `json:"progressPercent"`
	DaysLeft        int     `json:"daysLeft"`
}

// GoalStats summarizes a user's goals.
type GoalStats struct {
	Total          int `json:"total"`
	Active         int `json:"active"`
	Completed      int `json:"completed"`
	CompletionRate int `json:"completionRate"` // percent, rounded
}

type GoalService interface {
	CreateGoal(ctx context.Context, userID primitive.ObjectID, input NewGoal) (*domain.Goal, error)
	UpdateProgress(ctx context.Context, userID, goalID primitive.ObjectID, value float64) (*domain.Goal, error)
	SetStatus(ctx context.Context, userID, goalID primitive.ObjectID, status domain.GoalStatus) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID primitive.ObjectID) error
	ListGoals(ctx context.Context, userID primitive.ObjectID, tab string) ([]GoalView, error)
	Stats(ctx context.Context, userID primitive.ObjectID) (GoalStats, error)
}

type goalService struct {
	goalRepo  repository.GoalRepository
	publisher events.Publisher
	validate  *validator.Validate
	now       func() time.Time
}

func NewGoalService(goalRepo repository.GoalRepository, publisher events.Publisher) GoalService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &goalService{
		goalRepo:  goalRepo,
		publisher: publisher,
		validate:  validator.New(),
		now:       time.Now,
	}
}

// CreateGoal validates the form and stores a new active goal with no progress.
// Nothing is stored when validation fails.
func (s *goalService) CreateGoal(ctx context.Context, userID primitive.ObjectID, input NewGoal) (*domain.Goal, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Unit = strings.TrimSpace(input.Unit)
	input.Description = strings.TrimSpace(input.Description)

	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGoalValidation, err)
	}
	if math.IsInf(input.TargetValue, 0) || math.IsNaN(input.TargetValue) {
		return nil, fmt.Errorf("%w: target value must be finite", ErrGoalValidation)
	}
	if input.Deadline.IsZero() {
		return nil, fmt.Errorf("%w: deadline is required", ErrGoalValidation)
	}
	if input.Category == "" {
		input.Category = domain.GoalCategoryFitness
	}
	if input.Priority == "" {
		input.Priority = domain.GoalPriorityMedium
	}

	goal := &domain.Goal{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		TargetValue: input.TargetValue,
		Unit:        input.Unit,
		Deadline:    input.Deadline.UTC(),
		Status:      domain.GoalStatusActive,
		Priority:    input.Priority,
	}
	if _, err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateProgress sets the current value, clamped to [0, target]. Reaching the
// target completes the goal; dropping below it reactivates a completed goal.
// A paused goal stays paused until it reaches the target.
func (s *goalService) UpdateProgress(ctx context.Context, userID, goalID primitive.ObjectID, value float64) (*domain.Goal, error) {
	if math.IsNaN(value) {
		return nil, fmt.Errorf("%w: progress must be a number", ErrGoalValidation)
	}

	goal, err := s.getGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	wasCompleted := goal.Status == domain.GoalStatusCompleted
	goal.CurrentValue = math.Max(0, math.Min(value, goal.TargetValue))
	switch {
	case goal.IsReached():
		goal.Status = domain.GoalStatusCompleted
	case goal.Status == domain.GoalStatusPaused:
	default:
		goal.Status = domain.GoalStatusActive
	}

	if err := s.save(ctx, goal); err != nil {
		return nil, err
	}
	if !wasCompleted && goal.Status == domain.GoalStatusCompleted {
		s.completed(goal)
	}
	return goal, nil
}

// SetStatus pauses or resumes a goal. A goal at its target is always completed.
func (s *goalService) SetStatus(ctx context.Context, userID, goalID primitive.ObjectID, status domain.GoalStatus) (*domain.Goal, error) {
	if status != domain.GoalStatusActive && status != domain.GoalStatusPaused {
		return nil, fmt.Errorf("%w: status must be active or paused", ErrGoalValidation)
	}

	goal, err := s.getGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if goal.IsReached() {
		return goal, nil
	}

	goal.Status = status
	if err := s.save(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID primitive.ObjectID) error {
	if err := s.goalRepo.Delete(ctx, goalID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGoalNotFound
		}
		return err
	}
	return nil
}

// ListGoals returns the goals of one tab; unknown tabs fall back to active.
func (s *goalService) ListGoals(ctx context.Context, userID primitive.ObjectID, tab string) ([]GoalView, error) {
	goals, err := s.goalRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tab = strings.ToLower(strings.TrimSpace(tab))
	now := s.now()
	views := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		switch tab {
		case GoalTabAll:
		case GoalTabCompleted:
			if g.Status != domain.GoalStatusCompleted {
				continue
			}
		default:
			if g.Status != domain.GoalStatusActive {
				continue
			}
		}
		views = append(views, GoalView{
			Goal:            g,
			ProgressPercent: g.ProgressPercent(),
			DaysLeft:        g.DaysLeft(now),
		})
	}
	return views, nil
}

func (s *goalService) Stats(ctx context.Context, userID primitive.ObjectID) (GoalStats, error) {
	goals, err := s.goalRepo.ListByUserID(ctx, userID)
	if err != nil {
		return GoalStats{}, err
	}

	var stats GoalStats
	stats.Total = len(goals)
	for _, g := range goals {
		switch g.Status {
		case domain.GoalStatusActive:
			stats.Active++
		case domain.GoalStatusCompleted:
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats, nil
}

func (s *goalService) getGoal(ctx context.Context, userID, goalID primitive.ObjectID) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

func (s *goalService) save(ctx context.Context, goal *domain.Goal) error {
	if err := s.goalRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGoalNotFound
		}
		return err
	}
	return nil
}

func (s *goalService) completed(goal *domain.Goal) {
	metrics.GoalsCompletedTotal.Inc()
	log.Infof("goal %s of user %s completed", goal.ID.Hex(), goal.UserID.Hex())
	events.PublishAsync(s.publisher, events.GoalCompleted, goal.UserID.Hex(), *goal)
}
