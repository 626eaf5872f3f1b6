package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ProfileHandler serves the caller's body measurements and training preferences.
type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetFitnessGoalOptions godoc
// @Summary Selectable profile goals
// @Tags Profile
// @Produce json
// @Success 200 {array} domain.FitnessGoalOption
// @Router /profile/fitness-goals [get]
func (h *ProfileHandler) GetFitnessGoalOptions(c *gin.Context) {
	c.JSON(http.StatusOK, domain.FitnessGoalOptions)
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ProfileView
// @Failure 404 {object} gin.H "User not found"
// @Router /me/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.abortWithProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Replace the profile
// @Description Height and weight are sent in cm and kg. unitSystem only changes how they are shown.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body service.ProfileUpdate true "Profile"
// @Success 200 {object} service.ProfileView
// @Failure 400 {object} gin.H "Invalid profile"
// @Router /me/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req service.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.abortWithProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ToggleFitnessGoal godoc
// @Summary Select or deselect a profile goal
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Param goalId path string true "weight_loss, muscle_gain, endurance, strength, flexibility or general_fitness"
// @Success 200 {object} service.ProfileView
// @Failure 400 {object} gin.H "Unknown goal"
// @Router /me/profile/goals/{goalId} [post]
func (h *ProfileHandler) ToggleFitnessGoal(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.ToggleFitnessGoal(c.Request.Context(), userID, c.Param("goalId"))
	if err != nil {
		h.abortWithProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) abortWithProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfileValidation), errors.Is(err, service.ErrUnknownFitnessGoal):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, "User not found")
	default:
		log.WithField("request_id", c.GetString(ContextRequestIDKey)).Errorf("profile request failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to process profile")
	}
}
