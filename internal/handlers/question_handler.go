package handlers

import (
	"context"
	"net/http"

	"scamwise-backend/internal/models"
	"scamwise-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuestionHandler is the admin surface for managing question banks. It works
// on the full question documents, answers and explanations included; the
// learner-facing quiz endpoints serve the sanitized view.
type QuestionHandler struct {
	Repo *repository.QuestionRepository
}

func NewQuestionHandler(repo *repository.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{Repo: repo}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var question models.QuizQuestion
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if question.ModuleID == "" || question.Question == "" || len(question.Options) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "moduleId, question and at least two options are required"})
		return
	}
	if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "correctAnswer is out of range"})
		return
	}
	question.ID = uuid.NewString()
	question.Points = question.PointsOrDefault()
	if err := h.Repo.Create(context.Background(), &question); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Repo.Update(context.Background(), c.Param("id"), update); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.Repo.Delete(context.Background(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
