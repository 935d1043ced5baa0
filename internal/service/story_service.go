package service

import (
	"context"
	"time"

	"scamwise-backend/internal/models"
	"scamwise-backend/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type StoryService struct {
	Repo *repository.StoryRepository
}

func NewStoryService(repo *repository.StoryRepository) *StoryService {
	return &StoryService{Repo: repo}
}

func (s *StoryService) ListPublished(ctx context.Context, category string) ([]models.Story, error) {
	return s.Repo.FindPublished(ctx, category)
}

// GetPublished returns a story only when it is published; drafts read like
// missing documents to the public endpoint.
func (s *StoryService) GetPublished(ctx context.Context, id string) (*models.Story, error) {
	story, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !story.Published {
		return nil, models.ErrStoryNotFound
	}
	return story, nil
}

func (s *StoryService) Create(ctx context.Context, story *models.Story) error {
	story.ID = uuid.NewString()
	story.CreatedAt = time.Now()
	story.UpdatedAt = story.CreatedAt
	return s.Repo.Create(ctx, story)
}

func (s *StoryService) Update(ctx context.Context, id string, update map[string]interface{}) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return err
	}
	fields := bson.M{"updated_at": time.Now()}
	for k, v := range update {
		switch k {
		case "title", "summary", "content", "category", "published":
			fields[k] = v
		}
	}
	return s.Repo.Update(ctx, id, fields)
}

func (s *StoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
