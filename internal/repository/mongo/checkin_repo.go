package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const checkInCollectionName = "checkins"

// mongoCheckInRepository implements repository.CheckInRepository
type mongoCheckInRepository struct {
	collection *mongo.Collection
}

// NewMongoCheckInRepository creates a new CheckIn repository backed by MongoDB.
func NewMongoCheckInRepository(db *mongo.Database) repository.CheckInRepository {
	return &mongoCheckInRepository{
		collection: db.Collection(checkInCollectionName),
	}
}

// Create inserts a new check-in into the database.
func (r *mongoCheckInRepository) Create(ctx context.Context, checkIn *domain.CheckIn) (primitive.ObjectID, error) {
	if checkIn.UserID == primitive.NilObjectID || len(checkIn.Factors) == 0 {
		return primitive.NilObjectID, errors.New("check-in requires userId and factors")
	}

	checkIn.ID = primitive.NewObjectID()
	if checkIn.CreatedAt.IsZero() {
		checkIn.CreatedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, checkIn)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted check-in ID")
	}

	return insertedID, nil
}

// GetByID retrieves a check-in owned by userID.
func (r *mongoCheckInRepository) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.CheckIn, error) {
	var checkIn domain.CheckIn
	filter := bson.M{"_id": id, "userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&checkIn)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &checkIn, nil
}

// SetSnapshotKey records where the exported snapshot of a check-in lives.
func (r *mongoCheckInRepository) SetSnapshotKey(ctx context.Context, id primitive.ObjectID, key string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"snapshotKey": key}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("%w: check-in %s: %w", repository.ErrUpdateFailed, id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureCheckInIndexes creates necessary indexes for the checkins collection.
func EnsureCheckInIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warnf("failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
