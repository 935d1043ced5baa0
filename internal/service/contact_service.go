package service

import (
	"context"
	"log"
	"sync"
	"time"

	"scamwise-backend/internal/event"
	"scamwise-backend/internal/models"
	"scamwise-backend/internal/repository"

	"github.com/google/uuid"
)

// RateLimiter is an in-process fixed window: timestamps per key, entries
// older than the window filtered out on each check. State is lost on restart
// and not shared across processes.
type RateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
}

func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		window: window,
		max:    max,
		hits:   map[string][]time.Time{},
	}
}

// Allow records a hit for key and reports whether it stayed under the cap.
func (l *RateLimiter) Allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	recent := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= l.max {
		l.hits[key] = recent
		return false
	}
	l.hits[key] = append(recent, now)
	return true
}

type ContactService struct {
	Repo      *repository.ContactRepository
	Email     *EmailService
	Limiter   *RateLimiter
	Publisher Publisher
	NotifyTo  string
}

func NewContactService(repo *repository.ContactRepository, email *EmailService, limiter *RateLimiter, publisher Publisher, notifyTo string) *ContactService {
	return &ContactService{
		Repo:      repo,
		Email:     email,
		Limiter:   limiter,
		Publisher: publisher,
		NotifyTo:  notifyTo,
	}
}

// Submit stores a contact message after the per-IP-and-email rate limit
// check. The admin notification email is fire-and-forget.
func (s *ContactService) Submit(ctx context.Context, msg *models.ContactMessage) error {
	key := msg.ClientIP + "|" + msg.Email
	if !s.Limiter.Allow(key, time.Now()) {
		return models.ErrRateLimited
	}

	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now()
	if err := s.Repo.Create(ctx, msg); err != nil {
		return err
	}

	if s.Publisher != nil {
		s.Publisher.Publish(event.ContactReceived, map[string]interface{}{
			"id":    msg.ID,
			"email": msg.Email,
		})
	}
	if s.Email != nil && s.NotifyTo != "" {
		notify := *msg
		go func() {
			body := "From: " + notify.Name + " <" + notify.Email + ">\n\n" + notify.Message
			if err := s.Email.SendEmail("New contact message: "+notify.Subject, body, []string{s.NotifyTo}); err != nil {
				log.Printf("contact notification email failed: %v", err)
			}
		}()
	}
	return nil
}
