package handlers

import (
	"context"
	"net/http"

	"scamwise-backend/internal/models"
	"scamwise-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	Service *service.StoryService
}

func NewStoryHandler(s *service.StoryService) *StoryHandler {
	return &StoryHandler{Service: s}
}

func (h *StoryHandler) ListStories(c *gin.Context) {
	stories, err := h.Service.ListPublished(context.Background(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stories)
}

func (h *StoryHandler) GetStory(c *gin.Context) {
	story, err := h.Service.GetPublished(context.Background(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

type storyRequest struct {
	Title     string `json:"title" binding:"required"`
	Summary   string `json:"summary"`
	Content   string `json:"content" binding:"required"`
	Category  string `json:"category"`
	Published bool   `json:"published"`
}

func (h *StoryHandler) CreateStory(c *gin.Context) {
	var req storyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	story := &models.Story{
		Title:     req.Title,
		Summary:   req.Summary,
		Content:   req.Content,
		Category:  req.Category,
		Published: req.Published,
	}
	if err := h.Service.Create(context.Background(), story); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, story)
}

func (h *StoryHandler) UpdateStory(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Update(context.Background(), c.Param("id"), update); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (h *StoryHandler) DeleteStory(c *gin.Context) {
	if err := h.Service.Delete(context.Background(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
