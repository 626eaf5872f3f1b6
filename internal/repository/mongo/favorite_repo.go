// internal/repository/mongo/favorite_repo.go
package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const favoriteCollectionName = "favorites"

// mongoFavoriteRepository keeps one document per user, keyed by the user id.
type mongoFavoriteRepository struct {
	collection *mongo.Collection
}

func NewMongoFavoriteRepository(db *mongo.Database) repository.FavoriteRepository {
	return &mongoFavoriteRepository{
		collection: db.Collection(favoriteCollectionName),
	}
}

// GetByUserID returns the favorite exercise ids of a user in ascending order.
func (r *mongoFavoriteRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]int, error) {
	var favs domain.Favorites
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&favs)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []int{}, nil
		}
		return nil, err
	}
	ids := append([]int{}, favs.ExerciseIDs...)
	sort.Ints(ids)
	return ids, nil
}

// Toggle flips an exercise id in the user's set with a single pipeline update,
// creating the document on first use. Concurrent toggles serialize on the document.
func (r *mongoFavoriteRepository) Toggle(ctx context.Context, userID primitive.ObjectID, exerciseID int) (bool, error) {
	current := bson.M{"$ifNull": bson.A{"$exerciseIds", bson.A{}}}
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"exerciseIds": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{exerciseID, current}},
				bson.M{"$filter": bson.M{
					"input": current,
					"cond":  bson.M{"$ne": bson.A{"$$this", exerciseID}},
				}},
				bson.M{"$concatArrays": bson.A{current, bson.A{exerciseID}}},
			}},
			"updatedAt": time.Now().UTC(),
		}}},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var favs domain.Favorites
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": userID}, pipeline, opts).Decode(&favs); err != nil {
		return false, fmt.Errorf("%w: favorite %d: %w", repository.ErrUpdateFailed, exerciseID, err)
	}
	return slices.Contains(favs.ExerciseIDs, exerciseID), nil
}
