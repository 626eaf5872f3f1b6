package service

import (
	"alcyxob/fitness-tracker/internal/catalog"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository" // Import repository package
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
)

// --- Service Interface ---
type ExerciseService interface {
	Browse(ctx context.Context, userID primitive.ObjectID, query catalog.Query) ([]catalog.Exercise, error)
	GetExercise(id int) (catalog.Exercise, error)
	ToggleFavorite(ctx context.Context, userID primitive.ObjectID, exerciseID int) (bool, error)
	Favorites(ctx context.Context, userID primitive.ObjectID) ([]catalog.Exercise, error)
	Facets() catalog.Facets
}

// --- Service Implementation ---

// exerciseService serves the read-only catalog plus per-user favorites.
type exerciseService struct {
	catalog      *catalog.Catalog
	favoriteRepo repository.FavoriteRepository
	facets       catalog.Facets
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(c *catalog.Catalog, favoriteRepo repository.FavoriteRepository) ExerciseService {
	return &exerciseService{
		catalog:      c,
		favoriteRepo: favoriteRepo,
		facets:       c.Facets(),
	}
}

// Browse filters the catalog. The user's favorites are only loaded when the query asks for them.
func (s *exerciseService) Browse(ctx context.Context, userID primitive.ObjectID, query catalog.Query) ([]catalog.Exercise, error) {
	var favorites *catalog.FavoriteSet
	if query.FavoritesOnly {
		set, err := s.favoriteSet(ctx, userID)
		if err != nil {
			return nil, err
		}
		favorites = set
	}

	result := catalog.Filter(s.catalog.All(), query, favorites)
	metrics.FilterResults.Observe(float64(len(result)))
	return result, nil
}

func (s *exerciseService) GetExercise(id int) (catalog.Exercise, error) {
	ex, ok := s.catalog.Get(id)
	if !ok {
		return catalog.Exercise{}, ErrExerciseNotFound
	}
	return ex, nil
}

// ToggleFavorite flips membership of exerciseID and reports the new state.
func (s *exerciseService) ToggleFavorite(ctx context.Context, userID primitive.ObjectID, exerciseID int) (bool, error) {
	if _, ok := s.catalog.Get(exerciseID); !ok {
		return false, ErrExerciseNotFound
	}

	return s.favoriteRepo.Toggle(ctx, userID, exerciseID)
}

// Favorites lists the user's favorite exercises in catalog order.
func (s *exerciseService) Favorites(ctx context.Context, userID primitive.ObjectID) ([]catalog.Exercise, error) {
	favorites, err := s.favoriteSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return catalog.Filter(s.catalog.All(), catalog.Query{FavoritesOnly: true}, favorites), nil
}

func (s *exerciseService) Facets() catalog.Facets {
	return s.facets
}

func (s *exerciseService) favoriteSet(ctx context.Context, userID primitive.ObjectID) (*catalog.FavoriteSet, error) {
	ids, err := s.favoriteRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return catalog.NewFavoriteSet(ids...), nil
}
