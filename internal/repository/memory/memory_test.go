package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository_EmailIsCaseInsensitiveAndUnique(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	id, err := repo.Create(ctx, &domain.User{Email: "Jane@Example.com", PasswordHash: "x"})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "  jane@example.COM")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "jane@example.com", got.Email)

	_, err = repo.Create(ctx, &domain.User{Email: "JANE@example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = repo.GetByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_UpdateAndToggleFitnessGoal(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	id, err := repo.Create(ctx, &domain.User{Email: "jane@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	goals := []string{"strength"}
	err = repo.Update(ctx, &domain.User{
		ID:           id,
		FirstName:    "Jane",
		Email:        "other@example.com",
		PasswordHash: "",
		Profile:      domain.Profile{Age: 30, FitnessGoals: goals},
	})
	require.NoError(t, err)
	goals[0] = "mutated"

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "x", got.PasswordHash)
	assert.Equal(t, []string{"strength"}, got.Profile.FitnessGoals)

	toggled, err := repo.ToggleFitnessGoal(ctx, id, "endurance")
	require.NoError(t, err)
	assert.Equal(t, []string{"strength", "endurance"}, toggled.Profile.FitnessGoals)
	assert.Equal(t, []string{"strength"}, got.Profile.FitnessGoals, "earlier reads are not affected")

	toggled, err = repo.ToggleFitnessGoal(ctx, id, "strength")
	require.NoError(t, err)
	assert.Equal(t, []string{"endurance"}, toggled.Profile.FitnessGoals)

	assert.ErrorIs(t, repo.Update(ctx, &domain.User{ID: primitive.NewObjectID()}), repository.ErrNotFound)
	_, err = repo.ToggleFitnessGoal(ctx, primitive.NewObjectID(), "strength")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGoalRepository_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewGoalRepository()
	owner, other := primitive.NewObjectID(), primitive.NewObjectID()

	goal := &domain.Goal{UserID: owner, Title: "Run 5k", TargetValue: 5, Unit: "km", Deadline: time.Now().Add(24 * time.Hour)}
	id, err := repo.Create(ctx, goal)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, id, other)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id, other), repository.ErrNotFound)

	goal.CurrentValue = 2
	require.NoError(t, repo.Update(ctx, goal))
	got, err := repo.GetByID(ctx, id, owner)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.CurrentValue)

	second := &domain.Goal{UserID: owner, Title: "Sleep", TargetValue: 8, Unit: "h", Deadline: time.Now()}
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	list, err := repo.ListByUserID(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Sleep", list[0].Title, "newest first")

	require.NoError(t, repo.Delete(ctx, id, owner))
	list, err = repo.ListByUserID(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFavoriteRepository_Toggle(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFavoriteRepository()
	user := primitive.NewObjectID()

	ids, err := repo.GetByUserID(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, ids)

	on, err := repo.Toggle(ctx, user, 4)
	require.NoError(t, err)
	assert.True(t, on)
	_, err = repo.Toggle(ctx, user, 2)
	require.NoError(t, err)
	ids, _ = repo.GetByUserID(ctx, user)
	assert.Equal(t, []int{2, 4}, ids)

	on, err = repo.Toggle(ctx, user, 4)
	require.NoError(t, err)
	assert.False(t, on)
	ids, _ = repo.GetByUserID(ctx, user)
	assert.Equal(t, []int{2}, ids)

	other, _ := repo.GetByUserID(ctx, primitive.NewObjectID())
	assert.Empty(t, other)
}

func TestFavoriteRepository_ConcurrentTogglesPair(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFavoriteRepository()
	user := primitive.NewObjectID()

	const toggles = 50
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Toggle(ctx, user, 7)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	ids, err := repo.GetByUserID(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, ids, "an even number of toggles restores the original set")
}
