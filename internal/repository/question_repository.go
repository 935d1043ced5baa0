package repository

import (
	"context"

	"scamwise-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("quiz_questions")}
}

func (r *QuestionRepository) FindByModuleID(ctx context.Context, moduleID string) ([]models.QuizQuestion, error) {
	cur, err := r.Col.Find(ctx, bson.M{"module_id": moduleID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.QuizQuestion
	for cur.Next(ctx) {
		var q models.QuizQuestion
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.QuizQuestion, error) {
	var question models.QuizQuestion
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.QuizQuestion) error {
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
