package service_test

import (
	"context"
	"sync"
	"testing"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/repository/memory"
	"alcyxob/fitness-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newProfileFixture(t *testing.T) (service.ProfileService, repository.UserRepository, primitive.ObjectID) {
	t.Helper()
	users := memory.NewUserRepository()
	id, err := users.Create(context.Background(), &domain.User{
		FirstName:    "Alex",
		LastName:     "Johnson",
		Email:        "alex.johnson@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return service.NewProfileService(users), users, id
}

func TestGetProfile_Defaults(t *testing.T) {
	profiles, _, id := newProfileFixture(t)

	view, err := profiles.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", view.DisplayName)
	assert.Equal(t, "alex.johnson@example.com", view.Email)
	assert.Equal(t, domain.UnitSystemMetric, view.UnitSystem)
	assert.NotNil(t, view.FitnessGoals)
	assert.Empty(t, view.Height)

	_, err = profiles.GetProfile(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	profiles, users, id := newProfileFixture(t)

	view, err := profiles.UpdateProfile(ctx, id, service.ProfileUpdate{
		FirstName:    "  Alex ",
		LastName:     "J.",
		Age:          28,
		HeightCm:     175,
		WeightKg:     70,
		FitnessLevel: domain.FitnessLevelIntermediate,
		FitnessGoals: []string{"strength"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex J.", view.DisplayName)
	assert.Equal(t, "175 cm", view.Height)
	assert.Equal(t, "70 kg", view.Weight)
	assert.Equal(t, 1, view.ActiveGoals)

	stored, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Alex", stored.FirstName)
	assert.Equal(t, domain.UnitSystemMetric, stored.Profile.UnitSystem)
	assert.Equal(t, 28, stored.Profile.Age)
	assert.Equal(t, "alex.johnson@example.com", stored.Email)
	assert.NotEmpty(t, stored.PasswordHash)

	_, err = profiles.UpdateProfile(ctx, id, service.ProfileUpdate{FirstName: "Alex", FitnessLevel: "elite"})
	assert.ErrorIs(t, err, service.ErrProfileValidation)

	_, err = profiles.UpdateProfile(ctx, primitive.NewObjectID(), service.ProfileUpdate{FirstName: "Nobody"})
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestToggleFitnessGoal(t *testing.T) {
	ctx := context.Background()
	profiles, _, id := newProfileFixture(t)

	view, err := profiles.ToggleFitnessGoal(ctx, id, "endurance")
	require.NoError(t, err)
	assert.Equal(t, []string{"endurance"}, view.FitnessGoals)

	view, err = profiles.ToggleFitnessGoal(ctx, id, "endurance")
	require.NoError(t, err)
	assert.Empty(t, view.FitnessGoals)

	_, err = profiles.ToggleFitnessGoal(ctx, id, "yoga")
	assert.ErrorIs(t, err, service.ErrUnknownFitnessGoal)

	_, err = profiles.ToggleFitnessGoal(ctx, primitive.NewObjectID(), "endurance")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestToggleFitnessGoal_Concurrent(t *testing.T) {
	ctx := context.Background()
	profiles, _, id := newProfileFixture(t)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := profiles.ToggleFitnessGoal(ctx, id, "flexibility")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	view, err := profiles.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, view.FitnessGoals, "an even number of toggles leaves the goal unselected")
}
