package api

import (
	"alcyxob/fitness-tracker/internal/catalog"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ExerciseHandler serves the exercise library.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ExerciseQuery mirrors the library filter controls. Empty values and "All" match everything.
type ExerciseQuery struct {
	Search     string `form:"q"`
	Category   string `form:"category"`
	Difficulty string `form:"difficulty"`
	Type       string `form:"type"`
	Equipment  string `form:"equipment"`
	Favorites  bool   `form:"favorites"`
}

type ExerciseListResponse struct {
	Exercises []catalog.Exercise `json:"exercises"`
	Count     int                `json:"count"`
}

type FavoriteResponse struct {
	ExerciseID int  `json:"exerciseId"`
	Favorite   bool `json:"favorite"`
}

// ListExercises godoc
// @Summary Browse the exercise library
// @Description Filters the catalog by free text and facets. Catalog order is preserved.
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search in name, category and muscle groups"
// @Param category query string false "Workout type or raw category"
// @Param difficulty query string false "beginner, intermediate or advanced"
// @Param type query string false "Exercise type"
// @Param equipment query string false "Required equipment"
// @Param favorites query bool false "Only the caller's favorites"
// @Success 200 {object} ExerciseListResponse
// @Failure 400 {object} gin.H "Invalid query"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var q ExerciseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	exercises, err := h.exerciseService.Browse(c.Request.Context(), userID, catalog.Query{
		Search:        q.Search,
		Category:      q.Category,
		Difficulty:    q.Difficulty,
		Type:          q.Type,
		Equipment:     q.Equipment,
		FavoritesOnly: q.Favorites,
	})
	if err != nil {
		log.Errorf("failed to browse exercises for user %s: %v", userID.Hex(), err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercises")
		return
	}

	c.JSON(http.StatusOK, ExerciseListResponse{Exercises: exercises, Count: len(exercises)})
}

// GetFacets godoc
// @Summary Filter options
// @Tags Exercises
// @Produce json
// @Success 200 {object} catalog.Facets
// @Router /exercises/facets [get]
func (h *ExerciseHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, h.exerciseService.Facets())
}

// GetExercise godoc
// @Summary Exercise details
// @Tags Exercises
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} catalog.Exercise
// @Failure 400 {object} gin.H "Invalid ID"
// @Failure 404 {object} gin.H "Not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format")
		return
	}

	ex, err := h.exerciseService.GetExercise(id)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Exercise not found")
		return
	}
	c.JSON(http.StatusOK, ex)
}

// ToggleFavorite godoc
// @Summary Toggle favorite
// @Description Adds the exercise to the caller's favorites, or removes it when already present.
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} FavoriteResponse
// @Failure 400 {object} gin.H "Invalid ID"
// @Failure 404 {object} gin.H "Not found"
// @Router /exercises/{id}/favorite [post]
func (h *ExerciseHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format")
		return
	}

	favorite, err := h.exerciseService.ToggleFavorite(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
			return
		}
		log.Errorf("failed to toggle favorite %d for user %s: %v", id, userID.Hex(), err)
		abortWithError(c, http.StatusInternalServerError, "Failed to update favorites")
		return
	}
	c.JSON(http.StatusOK, FavoriteResponse{ExerciseID: id, Favorite: favorite})
}

// ListFavorites godoc
// @Summary Favorite exercises
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ExerciseListResponse
// @Router /exercises/favorites [get]
func (h *ExerciseHandler) ListFavorites(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	exercises, err := h.exerciseService.Favorites(c.Request.Context(), userID)
	if err != nil {
		log.Errorf("failed to load favorites for user %s: %v", userID.Hex(), err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load favorites")
		return
	}
	c.JSON(http.StatusOK, ExerciseListResponse{Exercises: exercises, Count: len(exercises)})
}
