package repository

import (
	"context"
	"time"

	"scamwise-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("user_progress")}
}

// EnsureIndexes creates the unique user_id index backing the one-record-per-user
// invariant.
func (r *ProgressRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *ProgressRepository) FindByUserID(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&progress)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrProgressNotFound
		}
		return nil, err
	}
	return &progress, nil
}

// Save upserts the aggregate document keyed by user_id. The level is derived
// from total XP on every write so it can never drift from the counter.
func (r *ProgressRepository) Save(ctx context.Context, progress *models.UserProgress) error {
	progress.Level = models.LevelForXP(progress.TotalXP)
	progress.UpdatedAt = time.Now()
	_, err := r.Col.ReplaceOne(
		ctx,
		bson.M{"user_id": progress.UserID},
		progress,
		options.Replace().SetUpsert(true),
	)
	return err
}

// FindTopByXP returns progress records ordered by total XP descending. When
// since is non-nil only records with activity at or after it are considered.
func (r *ProgressRepository) FindTopByXP(ctx context.Context, since *time.Time, limit int64) ([]models.UserProgress, error) {
	filter := bson.M{}
	if since != nil {
		filter["last_activity"] = bson.M{"$gte": *since}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "total_xp", Value: -1}}).
		SetLimit(limit)
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.UserProgress
	for cur.Next(ctx) {
		var p models.UserProgress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, nil
}
