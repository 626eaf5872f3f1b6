// Package memory holds process-local repository implementations. They back the
// mock auth provider and the memory database driver, and serve as fakes in tests.
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepository struct {
	mu      sync.RWMutex
	byID    map[primitive.ObjectID]domain.User
	byEmail map[string]primitive.ObjectID
}

func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byID:    make(map[primitive.ObjectID]domain.User),
		byEmail: make(map[string]primitive.ObjectID),
	}
}

func (r *userRepository) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Email == "" || user.PasswordHash == "" {
		return primitive.NilObjectID, errors.New("user email and password hash are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	email := domain.NormalizeEmail(user.Email)
	if _, exists := r.byEmail[email]; exists {
		return primitive.NilObjectID, repository.ErrDuplicate
	}

	user.ID = primitive.NewObjectID()
	user.Email = email
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.byID[user.ID] = *user
	r.byEmail[email] = user.ID
	return user.ID, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *userRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.Profile = user.Profile
	stored.Profile.FitnessGoals = slices.Clone(user.Profile.FitnessGoals)
	stored.UpdatedAt = time.Now().UTC()
	r.byID[user.ID] = stored
	user.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *userRepository) ToggleFitnessGoal(_ context.Context, id primitive.ObjectID, goalID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	stored.Profile.FitnessGoals = slices.Clone(stored.Profile.FitnessGoals)
	stored.Profile.ToggleFitnessGoal(goalID)
	stored.UpdatedAt = time.Now().UTC()
	r.byID[id] = stored

	user := stored
	user.Profile.FitnessGoals = slices.Clone(stored.Profile.FitnessGoals)
	return &user, nil
}
