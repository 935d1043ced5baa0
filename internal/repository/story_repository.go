package repository

import (
	"context"

	"scamwise-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StoryRepository struct {
	Col *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) *StoryRepository {
	return &StoryRepository{Col: db.Collection("stories")}
}

func (r *StoryRepository) FindPublished(ctx context.Context, category string) ([]models.Story, error) {
	filter := bson.M{"published": true}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var stories []models.Story
	for cur.Next(ctx) {
		var s models.Story
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}
	return stories, nil
}

func (r *StoryRepository) FindByID(ctx context.Context, id string) (*models.Story, error) {
	var story models.Story
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&story)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrStoryNotFound
		}
		return nil, err
	}
	return &story, nil
}

func (r *StoryRepository) Create(ctx context.Context, story *models.Story) error {
	_, err := r.Col.InsertOne(ctx, story)
	return err
}

func (r *StoryRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *StoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
