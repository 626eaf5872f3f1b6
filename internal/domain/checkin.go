package domain

import (
	"time"

	"alcyxob/fitness-tracker/internal/readiness"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckIn is one submitted daily readiness questionnaire. Check-ins are
// independent snapshots; none references a previous one.
type CheckIn struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Factors     []readiness.Factor `bson:"factors" json:"factors"`
	Score       int                `bson:"score" json:"score"`
	Level       readiness.Level    `bson:"level" json:"level"`
	Tier        string             `bson:"tier" json:"tier"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	SnapshotKey string             `bson:"snapshotKey,omitempty" json:"snapshotKey,omitempty"` // Object key of the exported JSON snapshot
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
