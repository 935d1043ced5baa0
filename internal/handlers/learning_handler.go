package handlers

import (
	"context"
	"net/http"
	"strconv"

	"scamwise-backend/internal/middleware"
	"scamwise-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type LearningHandler struct {
	Progress    *service.ProgressService
	Leaderboard *service.LeaderboardService
}

func NewLearningHandler(progress *service.ProgressService, leaderboard *service.LeaderboardService) *LearningHandler {
	return &LearningHandler{Progress: progress, Leaderboard: leaderboard}
}

func (h *LearningHandler) GetStats(c *gin.Context) {
	progress, err := h.Progress.Stats(context.Background(), middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *LearningHandler) GetLeaderboard(c *gin.Context) {
	window := c.DefaultQuery("window", "all")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.Leaderboard.Leaderboard(context.Background(), window, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": window, "entries": entries})
}

func (h *LearningHandler) CompleteModule(c *gin.Context) {
	moduleID := c.Param("moduleId")
	userID := middleware.CallerID(c)

	xp, already, err := h.Progress.CompleteModule(context.Background(), userID, moduleID)
	if err != nil {
		respondError(c, err)
		return
	}
	if already {
		c.JSON(http.StatusConflict, gin.H{"message": "module already completed", "xpEarned": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "module completed", "xpEarned": xp})
}
