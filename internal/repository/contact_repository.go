package repository

import (
	"context"

	"scamwise-backend/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ContactRepository struct {
	Col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{Col: db.Collection("contact_messages")}
}

func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	_, err := r.Col.InsertOne(ctx, msg)
	return err
}
