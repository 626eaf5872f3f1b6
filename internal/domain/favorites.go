package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorites is the stored form of a user's favorite exercise ids.
type Favorites struct {
	UserID      primitive.ObjectID `bson:"_id" json:"userId"`
	ExerciseIDs []int              `bson:"exerciseIds" json:"exerciseIds"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
