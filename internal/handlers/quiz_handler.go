package handlers

import (
	"context"
	"net/http"
	"strconv"

	"scamwise-backend/internal/middleware"
	"scamwise-backend/internal/models"
	"scamwise-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service  *service.QuizService
	Progress *service.ProgressService
}

func NewQuizHandler(s *service.QuizService, progress *service.ProgressService) *QuizHandler {
	return &QuizHandler{Service: s, Progress: progress}
}

// GetModuleQuiz returns a module's questions without answers. 404 when the
// module has no question bank.
func (h *QuizHandler) GetModuleQuiz(c *gin.Context) {
	moduleID := c.Param("moduleId")
	questions, err := h.Service.GetModuleQuestions(context.Background(), moduleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"moduleId": moduleID, "questions": questions})
}

type submitQuizRequest struct {
	ModuleID         string                    `json:"moduleId" binding:"required"`
	Answers          []models.AnswerSubmission `json:"answers" binding:"required"`
	TimeSpentSeconds int                       `json:"timeSpentSeconds"`
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := middleware.CallerID(c)
	result, err := h.Service.SubmitQuiz(context.Background(), userID, c.Param("quizId"), req.ModuleID, req.Answers, req.TimeSpentSeconds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUserAttempts returns a page of attempt history. Callers may read their
// own history; admins may read anyone's.
func (h *QuizHandler) GetUserAttempts(c *gin.Context) {
	userID := c.Param("userId")
	if userID != middleware.CallerID(c) && !middleware.CallerIsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot view another user's attempts"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	attempts, err := h.Progress.Attempts(context.Background(), userID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}
