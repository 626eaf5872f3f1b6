package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalHandler serves the caller's personal goals.
type GoalHandler struct {
	goalService service.GoalService
}

func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

type ProgressRequest struct {
	CurrentValue *float64 `json:"currentValue" binding:"required"`
}

type StatusRequest struct {
	Status domain.GoalStatus `json:"status" binding:"required"`
}

// ListGoals godoc
// @Summary List goals
// @Tags Goals
// @Produce json
// @Security BearerAuth
// @Param tab query string false "active (default), completed or all"
// @Success 200 {array} service.GoalView
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	goals, err := h.goalService.ListGoals(c.Request.Context(), userID, c.DefaultQuery("tab", service.GoalTabActive))
	if err != nil {
		h.abortWithGoalError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// GetStats godoc
// @Summary Goal summary counts
// @Tags Goals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.GoalStats
// @Router /goals/stats [get]
func (h *GoalHandler) GetStats(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	stats, err := h.goalService.Stats(c.Request.Context(), userID)
	if err != nil {
		h.abortWithGoalError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateGoal godoc
// @Summary Create a goal
// @Tags Goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param goal body service.NewGoal true "Goal details"
// @Success 201 {object} domain.Goal
// @Failure 400 {object} gin.H "Invalid goal"
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req service.NewGoal
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, "Invalid deadline, expected YYYY-MM-DD")
			return
		}
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		h.abortWithGoalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// UpdateProgress godoc
// @Summary Record progress
// @Description Sets the current value. Reaching the target completes the goal.
// @Tags Goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param progress body ProgressRequest true "New current value"
// @Success 200 {object} domain.Goal
// @Failure 404 {object} gin.H "Goal not found"
// @Router /goals/{id}/progress [patch]
func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	goalID, ok := goalIDParam(c)
	if !ok {
		return
	}
	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	goal, err := h.goalService.UpdateProgress(c.Request.Context(), userID, goalID, *req.CurrentValue)
	if err != nil {
		h.abortWithGoalError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// SetStatus godoc
// @Summary Pause or resume a goal
// @Tags Goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param status body StatusRequest true "active or paused"
// @Success 200 {object} domain.Goal
// @Failure 400 {object} gin.H "Invalid status"
// @Failure 404 {object} gin.H "Goal not found"
// @Router /goals/{id}/status [patch]
func (h *GoalHandler) SetStatus(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	goalID, ok := goalIDParam(c)
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	goal, err := h.goalService.SetStatus(c.Request.Context(), userID, goalID, req.Status)
	if err != nil {
		h.abortWithGoalError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Tags Goals
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 204 "Deleted"
// @Failure 404 {object} gin.H "Goal not found"
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	goalID, ok := goalIDParam(c)
	if !ok {
		return
	}
	if err := h.goalService.DeleteGoal(c.Request.Context(), userID, goalID); err != nil {
		h.abortWithGoalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func goalIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid goal ID format")
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *GoalHandler) abortWithGoalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGoalValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrGoalNotFound):
		abortWithError(c, http.StatusNotFound, "Goal not found")
	default:
		log.WithField("request_id", c.GetString(ContextRequestIDKey)).Errorf("goal request failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to process goal")
	}
}
