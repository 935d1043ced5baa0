package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"scamwise-backend/internal/models"
	"scamwise-backend/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	LeaderboardDefaultLimit = 50
	LeaderboardMaxLimit     = 100

	leaderboardCacheTTL = time.Minute
)

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	TotalXP  int    `json:"totalXP"`
	Level    int    `json:"level"`
}

type LeaderboardService struct {
	Progress *repository.ProgressRepository
	Cache    *redis.Client // nil disables caching
}

func NewLeaderboardService(progress *repository.ProgressRepository, cache *redis.Client) *LeaderboardService {
	return &LeaderboardService{Progress: progress, Cache: cache}
}

// Leaderboard returns up to limit users ranked by total XP descending.
// Window "week" and "month" filter by last activity; "all" (or anything
// else) applies no filter. Ties get distinct consecutive ranks in the
// storage sort order.
func (s *LeaderboardService) Leaderboard(ctx context.Context, window string, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = LeaderboardDefaultLimit
	}
	if limit > LeaderboardMaxLimit {
		limit = LeaderboardMaxLimit
	}

	cacheKey := fmt.Sprintf("leaderboard:%s:%d", window, limit)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		}
	}

	var since *time.Time
	now := time.Now()
	switch window {
	case "week":
		t := now.AddDate(0, 0, -7)
		since = &t
	case "month":
		t := now.AddDate(0, -1, 0)
		since = &t
	}

	records, err := s.Progress.FindTopByXP(ctx, since, int64(limit))
	if err != nil {
		return nil, err
	}

	entries := buildEntries(records)

	if s.Cache != nil {
		if payload, err := json.Marshal(entries); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
				log.Printf("leaderboard cache set failed: %v", err)
			}
		}
	}
	return entries, nil
}

// buildEntries annotates records, already sorted by XP descending, with
// 1-based consecutive ranks. Ties keep the storage order and get distinct
// ranks.
func buildEntries(records []models.UserProgress) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(records))
	for i, p := range records {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			UserID:   p.UserID,
			UserName: p.UserName,
			TotalXP:  p.TotalXP,
			Level:    p.Level,
		})
	}
	return entries
}
