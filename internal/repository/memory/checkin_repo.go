package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/readiness"
	"alcyxob/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type checkInRepository struct {
	mu       sync.RWMutex
	checkIns map[primitive.ObjectID]domain.CheckIn
}

func NewCheckInRepository() repository.CheckInRepository {
	return &checkInRepository{checkIns: make(map[primitive.ObjectID]domain.CheckIn)}
}

func (r *checkInRepository) Create(_ context.Context, checkIn *domain.CheckIn) (primitive.ObjectID, error) {
	if checkIn.UserID == primitive.NilObjectID || len(checkIn.Factors) == 0 {
		return primitive.NilObjectID, errors.New("check-in requires userId and factors")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	checkIn.ID = primitive.NewObjectID()
	if checkIn.CreatedAt.IsZero() {
		checkIn.CreatedAt = time.Now().UTC()
	}
	stored := *checkIn
	stored.Factors = append([]readiness.Factor(nil), checkIn.Factors...)
	r.checkIns[checkIn.ID] = stored
	return checkIn.ID, nil
}

func (r *checkInRepository) GetByID(_ context.Context, id, userID primitive.ObjectID) (*domain.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	checkIn, ok := r.checkIns[id]
	if !ok || checkIn.UserID != userID {
		return nil, repository.ErrNotFound
	}
	checkIn.Factors = append([]readiness.Factor(nil), checkIn.Factors...)
	return &checkIn, nil
}

func (r *checkInRepository) SetSnapshotKey(_ context.Context, id primitive.ObjectID, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	checkIn, ok := r.checkIns[id]
	if !ok {
		return repository.ErrNotFound
	}
	checkIn.SnapshotKey = key
	r.checkIns[id] = checkIn
	return nil
}
