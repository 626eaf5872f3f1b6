package mongo_test

import (
	"context"
	"testing"

	"alcyxob/fitness-tracker/internal/repository"
	repomongo "alcyxob/fitness-tracker/internal/repository/mongo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoFavoriteRepository_Toggle(t *testing.T) {
	mt := newMockT(t)

	mt.Run("upserts on first use", func(mt *mtest.T) {
		repo := repomongo.NewMongoFavoriteRepository(mt.DB)
		user := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: user},
			{Key: "exerciseIds", Value: bson.A{4}},
		}}))

		favorite, err := repo.Toggle(context.Background(), user, 4)
		require.NoError(mt, err)
		assert.True(mt, favorite)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
		assert.True(mt, evt.Command.Lookup("upsert").Boolean())
		assert.True(mt, evt.Command.Lookup("new").Boolean())
		assert.Equal(mt, user, evt.Command.Lookup("query", "_id").ObjectID())
		_, isPipeline := evt.Command.Lookup("update").ArrayOK()
		assert.True(mt, isPipeline, "toggle is a single pipeline update")
	})

	mt.Run("removes existing id", func(mt *mtest.T) {
		repo := repomongo.NewMongoFavoriteRepository(mt.DB)
		user := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: user},
			{Key: "exerciseIds", Value: bson.A{1, 7}},
		}}))

		favorite, err := repo.Toggle(context.Background(), user, 4)
		require.NoError(mt, err)
		assert.False(mt, favorite)
	})

	mt.Run("driver failure", func(mt *mtest.T) {
		repo := repomongo.NewMongoFavoriteRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(badValue))

		_, err := repo.Toggle(context.Background(), primitive.NewObjectID(), 4)
		assert.ErrorIs(mt, err, repository.ErrUpdateFailed)
	})
}

func TestMongoFavoriteRepository_GetByUserID(t *testing.T) {
	mt := newMockT(t)

	mt.Run("sorted", func(mt *mtest.T) {
		repo := repomongo.NewMongoFavoriteRepository(mt.DB)
		user := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fitness.favorites", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: user},
			{Key: "exerciseIds", Value: bson.A{7, 2, 5}},
		}))

		ids, err := repo.GetByUserID(context.Background(), user)
		require.NoError(mt, err)
		assert.Equal(mt, []int{2, 5, 7}, ids)
	})

	mt.Run("no document means no favorites", func(mt *mtest.T) {
		repo := repomongo.NewMongoFavoriteRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fitness.favorites", mtest.FirstBatch))

		ids, err := repo.GetByUserID(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.NotNil(mt, ids)
		assert.Empty(mt, ids)
	})
}
