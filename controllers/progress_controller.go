package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VShilovich/fitness-bot/services"
)

// ProgressController exposes read-only progress views over HTTP. All
// mutation goes through the Telegram transport; these endpoints only project
// the current snapshot.
type ProgressController struct {
	tracker *services.TrackerService
	chart   *services.ChartService
}

func NewProgressController(tracker *services.TrackerService, chart *services.ChartService) *ProgressController {
	return &ProgressController{tracker: tracker, chart: chart}
}

// GET /users/:id/progress
func (pc *ProgressController) GetProgress(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	snap, err := pc.tracker.Snapshot(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotOnboarded) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile is not set up"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GET /users/:id/progress/chart.png
func (pc *ProgressController) GetProgressChart(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	snap, err := pc.tracker.Snapshot(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotOnboarded) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile is not set up"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	imageBytes, err := pc.chart.Render(snap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", imageBytes)
}

func parseUserID(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return userID, true
}
