package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type goalRepository struct {
	mu    sync.RWMutex
	goals map[primitive.ObjectID]domain.Goal
}

func NewGoalRepository() repository.GoalRepository {
	return &goalRepository{goals: make(map[primitive.ObjectID]domain.Goal)}
}

func (r *goalRepository) Create(_ context.Context, goal *domain.Goal) (primitive.ObjectID, error) {
	if goal.UserID == primitive.NilObjectID || goal.Title == "" {
		return primitive.NilObjectID, errors.New("goal requires userId and title")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	goal.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	r.goals[goal.ID] = *goal
	return goal.ID, nil
}

func (r *goalRepository) GetByID(_ context.Context, id, userID primitive.ObjectID) (*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, ok := r.goals[id]
	if !ok || goal.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &goal, nil
}

func (r *goalRepository) ListByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := []domain.Goal{}
	for _, g := range r.goals {
		if g.UserID == userID {
			goals = append(goals, g)
		}
	}
	// ObjectIDs grow with time, so they break ties between goals created in the same instant.
	sort.Slice(goals, func(i, j int) bool {
		if !goals[i].CreatedAt.Equal(goals[j].CreatedAt) {
			return goals[i].CreatedAt.After(goals[j].CreatedAt)
		}
		return goals[i].ID.Hex() > goals[j].ID.Hex()
	})
	return goals, nil
}

func (r *goalRepository) Update(_ context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.goals[goal.ID]
	if !ok || existing.UserID != goal.UserID {
		return repository.ErrNotFound
	}
	goal.CreatedAt = existing.CreatedAt
	goal.UpdatedAt = time.Now().UTC()
	r.goals[goal.ID] = *goal
	return nil
}

func (r *goalRepository) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.goals[id]
	if !ok || existing.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.goals, id)
	return nil
}
