package memory

import (
	"context"
	"sync"

	"alcyxob/fitness-tracker/internal/catalog"
	"alcyxob/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type favoriteRepository struct {
	mu   sync.Mutex
	sets map[primitive.ObjectID]*catalog.FavoriteSet
}

func NewFavoriteRepository() repository.FavoriteRepository {
	return &favoriteRepository{sets: make(map[primitive.ObjectID]*catalog.FavoriteSet)}
}

func (r *favoriteRepository) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sets[userID].IDs(), nil
}

func (r *favoriteRepository) Toggle(_ context.Context, userID primitive.ObjectID, exerciseID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[userID]
	if !ok {
		set = catalog.NewFavoriteSet()
		r.sets[userID] = set
	}
	return set.Toggle(exerciseID), nil
}
