package api

import (
	"alcyxob/fitness-tracker/internal/readiness"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReadinessHandler struct {
	readinessService service.ReadinessService
}

func NewReadinessHandler(readinessService service.ReadinessService) *ReadinessHandler {
	return &ReadinessHandler{readinessService: readinessService}
}

type FactorRating struct {
	ID    readiness.FactorID `json:"id" binding:"required"`
	Value int                `json:"value" binding:"required"`
}

type ScoreRequest struct {
	Factors []FactorRating `json:"factors" binding:"required"`
}

type CheckInRequest struct {
	Factors []FactorRating `json:"factors" binding:"required"`
	Notes   string         `json:"notes"`
}

type FactorInfo struct {
	readiness.Factor
	Tips []string `json:"tips"`
}

type FactorsResponse struct {
	Factors   []FactorInfo `json:"factors"`
	MinRating int          `json:"minRating"`
	MaxRating int          `json:"maxRating"`
}

type SnapshotResponse struct {
	URL string `json:"url"`
}

func toFactors(ratings []FactorRating) []readiness.Factor {
	factors := make([]readiness.Factor, len(ratings))
	for i, r := range ratings {
		factors[i] = readiness.Factor{ID: r.ID, Value: r.Value}
	}
	return factors
}

// GetFactors godoc
// @Summary Check-in questionnaire
// @Description The five readiness factors with their default ratings and improvement tips.
// @Tags Readiness
// @Produce json
// @Success 200 {object} FactorsResponse
// @Router /readiness/factors [get]
func (h *ReadinessHandler) GetFactors(c *gin.Context) {
	defaults := readiness.DefaultFactors()
	infos := make([]FactorInfo, len(defaults))
	for i, f := range defaults {
		infos[i] = FactorInfo{Factor: f, Tips: readiness.TipsFor(f.ID)}
	}
	c.JSON(http.StatusOK, FactorsResponse{
		Factors:   infos,
		MinRating: readiness.MinRating,
		MaxRating: readiness.MaxRating,
	})
}

// Score godoc
// @Summary Preview a readiness score
// @Description Scores five ratings without storing a check-in.
// @Tags Readiness
// @Accept json
// @Produce json
// @Param ratings body ScoreRequest true "Five factor ratings"
// @Success 200 {object} readiness.Result
// @Failure 400 {object} gin.H "Invalid ratings"
// @Router /readiness/score [post]
func (h *ReadinessHandler) Score(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, err := h.readinessService.Evaluate(toFactors(req.Factors))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// SubmitCheckIn godoc
// @Summary Submit a daily check-in
// @Tags Readiness
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param checkin body CheckInRequest true "Five factor ratings and optional notes"
// @Success 201 {object} service.CheckInResult
// @Failure 400 {object} gin.H "Invalid ratings"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /readiness/checkins [post]
func (h *ReadinessHandler) SubmitCheckIn(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	res, err := h.readinessService.SubmitCheckIn(c.Request.Context(), userID, toFactors(req.Factors), req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCheckIn) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.WithField("request_id", c.GetString(ContextRequestIDKey)).Errorf("failed to store check-in: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to store check-in")
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetSnapshot godoc
// @Summary Download link for a check-in snapshot
// @Tags Readiness
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Success 200 {object} SnapshotResponse
// @Failure 404 {object} gin.H "Unknown check-in or no snapshot"
// @Failure 501 {object} gin.H "Snapshots disabled"
// @Router /readiness/checkins/{id}/snapshot [get]
func (h *ReadinessHandler) GetSnapshot(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	checkInID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid check-in ID format")
		return
	}

	url, err := h.readinessService.SnapshotURL(c.Request.Context(), userID, checkInID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, SnapshotResponse{URL: url})
	case errors.Is(err, service.ErrSnapshotDisabled):
		abortWithError(c, http.StatusNotImplemented, err.Error())
	case errors.Is(err, service.ErrCheckInNotFound), errors.Is(err, service.ErrNoSnapshot):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		log.Errorf("failed to presign snapshot of check-in %s: %v", checkInID.Hex(), err)
		abortWithError(c, http.StatusInternalServerError, "Failed to create download link")
	}
}
