package repository

import (
	"alcyxob/fitness-tracker/internal/domain" // Import our defined domain models
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("already exists")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
// Emails are matched in their normalized (lower-cased) form.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error // Names and profile only
	// ToggleFitnessGoal flips goalID in the profile goal set in one atomic step
	// and returns the updated user.
	ToggleFitnessGoal(ctx context.Context, id primitive.ObjectID, goalID string) (*domain.User, error)
}

// GoalRepository defines the interface for interacting with goal data.
// Lookups are scoped to the owning user so one user can never see another's goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Goal, error)
	ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Goal, error) // Newest first
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// CheckInRepository stores submitted readiness check-ins.
type CheckInRepository interface {
	Create(ctx context.Context, checkIn *domain.CheckIn) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.CheckIn, error)
	SetSnapshotKey(ctx context.Context, id primitive.ObjectID, key string) error
}

// FavoriteRepository stores each user's favorite exercise ids.
type FavoriteRepository interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]int, error) // Empty, not ErrNotFound, when the user has none
	// Toggle flips membership of exerciseID in one atomic step and reports the new state.
	Toggle(ctx context.Context, userID primitive.ObjectID, exerciseID int) (bool, error)
}
