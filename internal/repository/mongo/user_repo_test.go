package mongo_test

import (
	"context"
	"testing"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	repomongo "alcyxob/fitness-tracker/internal/repository/mongo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// badValue is a non-retryable command failure.
var badValue = mtest.CommandError{Code: 2, Name: "BadValue", Message: "bad value"}

func TestMongoUserRepository_Create(t *testing.T) {
	mt := newMockT(t)

	mt.Run("stores normalized email", func(mt *mtest.T) {
		repo := repomongo.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &domain.User{Email: " Jane@Example.com ", PasswordHash: "hash"}
		id, err := repo.Create(context.Background(), user)
		require.NoError(mt, err)
		assert.Equal(mt, user.ID, id)
		assert.Equal(mt, "jane@example.com", user.Email)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := repomongo.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: fitness.users index: email_1",
		}))

		_, err := repo.Create(context.Background(), &domain.User{Email: "jane@example.com", PasswordHash: "hash"})
		assert.ErrorIs(mt, err, repository.ErrDuplicate)
	})

	mt.Run("missing fields never reach the server", func(mt *mtest.T) {
		repo := repomongo.NewMongoUserRepository(mt.DB)

		_, err := repo.Create(context.Background(), &domain.User{Email: "jane@example.com"})
		assert.Error(mt, err)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestMongoUserRepository_GetByID(t *testing.T) {
	mt := newMockT(t)

	mt.Run("found", func(mt *mtest.T) {
		repo := repomongo.NewMongoUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fitness.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "firstName", Value: "Jane"},
			{Key: "email", Value: "jane@example.com"},
			{Key: "profile", Value: bson.D{
				{Key: "unitSystem", Value: "imperial"},
				{Key: "fitnessGoals", Value: bson.A{"strength"}},
			}},
		}))

		user, err := repo.GetByID(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, "Jane", user.FirstName)
		assert.Equal(mt, domain.UnitSystemImperial, user.Profile.UnitSystem)
		assert.Equal(mt, []string{"strength"}, user.Profile.FitnessGoals)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := repomongo.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fitness.users", mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("server error is not a miss", func(mt *mtest.T) {
		repo := repomongo.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(badValue))

		_, err := repo.GetByEmail(context.Background(), "jane@example.com")
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestMongoUserRepository_Update(t *testing.T) {
	mt := newMockT(t)

	mt.Run("writes names and profile", func(mt *mtest.T) {
		repo := repomongo.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		user := &domain.User{ID: primitive.NewObjectID(), FirstName: "Jane", Profile: domain.Profile{Age: 30}}
		require.NoError(mt, repo.Update(context.Background(), user))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "update", evt.CommandName)
		set := evt.Command.Lookup("updates", "0", "u", "$set")
		assert.Equal(mt, "Jane", set.Document().Lookup("firstName").StringValue())
		assert.EqualValues(mt, 30, set.Document().Lookup("profile", "age").AsInt64())
		_, errEmail := set.Document().LookupErr("email")
		assert.Error(mt, errEmail, "email is never rewritten")
	})

	mt.Run("unknown user", func(mt *mtest.T) {
		repo := repomongo.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.Update(context.Background(), &domain.User{ID: primitive.NewObjectID()})
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("driver failure", func(mt *mtest.T) {
		repo := repomongo.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(badValue))

		err := repo.Update(context.Background(), &domain.User{ID: primitive.NewObjectID()})
		assert.ErrorIs(mt, err, repository.ErrUpdateFailed)
	})
}

func TestMongoUserRepository_ToggleFitnessGoal(t *testing.T) {
	mt := newMockT(t)

	mt.Run("returns updated user", func(mt *mtest.T) {
		repo := repomongo.NewMongoUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "profile", Value: bson.D{{Key: "fitnessGoals", Value: bson.A{"endurance"}}}},
		}}))

		user, err := repo.ToggleFitnessGoal(context.Background(), id, "endurance")
		require.NoError(mt, err)
		assert.Equal(mt, []string{"endurance"}, user.Profile.FitnessGoals)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
		assert.Equal(mt, id, evt.Command.Lookup("query", "_id").ObjectID())
	})

	mt.Run("unknown user", func(mt *mtest.T) {
		repo := repomongo.NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.ToggleFitnessGoal(context.Background(), primitive.NewObjectID(), "endurance")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}
