package service

import (
	"context"
	"sort"
	"time"

	"scamwise-backend/internal/catalog"
	"scamwise-backend/internal/models"
	"scamwise-backend/internal/repository"

	"github.com/google/uuid"
)

type ProgressService struct {
	Repo    *repository.ProgressRepository
	Users   *repository.UserRepository
	Modules catalog.Catalog
}

func NewProgressService(repo *repository.ProgressRepository, users *repository.UserRepository, modules catalog.Catalog) *ProgressService {
	return &ProgressService{Repo: repo, Users: users, Modules: modules}
}

// EnsureProgress returns the user's progress record, creating an empty one on
// the user's first progress-relevant action. The user must exist.
func (s *ProgressService) EnsureProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	progress, err := s.Repo.FindByUserID(ctx, userID)
	if err == nil {
		return progress, nil
	}
	if err != models.ErrProgressNotFound {
		return nil, err
	}
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress = &models.UserProgress{
		ID:       uuid.NewString(),
		UserID:   userID,
		UserName: user.Name,
		Level:    1,
	}
	if err := s.Repo.Save(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// RecordAttempt appends a quiz attempt to the user's progress and refreshes
// the aggregate statistics. The progress record must already exist; the quiz
// flow does not create it.
func (s *ProgressService) RecordAttempt(ctx context.Context, userID, moduleID string, attempt models.QuizAttempt) error {
	progress, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	module := progress.EnsureModule(moduleID)
	module.Attempts = append(module.Attempts, attempt)

	progress.Statistics.TotalQuizzesAttempted++
	if attempt.Passed {
		progress.Statistics.TotalQuizzesPassed++
	}
	// Unweighted mean of percentages across every attempt in every module.
	attempts := progress.AllAttempts()
	sum := 0
	for _, a := range attempts {
		sum += a.Percentage
	}
	progress.Statistics.AverageQuizScore = float64(sum) / float64(len(attempts))
	now := attempt.SubmittedAt
	progress.Statistics.LastQuizCompletedAt = &now

	s.touchStreak(progress, now)

	return s.Repo.Save(ctx, progress)
}

// AwardXP adds amount to the user's XP total. Amount validation is the
// caller's responsibility. Returns the new total and level.
func (s *ProgressService) AwardXP(ctx context.Context, userID string, amount int) (int, int, error) {
	progress, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	progress.TotalXP += amount
	if err := s.Repo.Save(ctx, progress); err != nil {
		return 0, 0, err
	}
	return progress.TotalXP, progress.Level, nil
}

// CompleteModule marks a module completed and awards its catalog XP. A module
// already marked completed awards nothing and reports alreadyCompleted, so
// the public completion endpoint cannot be replayed for XP.
func (s *ProgressService) CompleteModule(ctx context.Context, userID, moduleID string) (xpAwarded int, alreadyCompleted bool, err error) {
	info, ok := s.Modules.Info(moduleID)
	if !ok {
		return 0, false, models.ErrModuleNotFound
	}

	progress, err := s.EnsureProgress(ctx, userID)
	if err != nil {
		return 0, false, err
	}

	module := progress.EnsureModule(moduleID)
	if module.Completed {
		return 0, true, nil
	}

	now := time.Now()
	module.Completed = true
	module.CompletedAt = &now
	module.XPEarned += info.XP
	progress.TotalXP += info.XP

	s.touchStreak(progress, now)

	if err := s.Repo.Save(ctx, progress); err != nil {
		return 0, false, err
	}
	return info.XP, false, nil
}

// NextStreak computes the streak counter after activity at now, given the
// previous activity time. Distance is measured in calendar days, so activity
// late at night followed by activity after midnight extends the streak even
// when fewer than 24 hours elapsed.
func NextStreak(current int, lastActivity *time.Time, now time.Time) (streak int, activityChanged bool) {
	if lastActivity == nil {
		return 1, true
	}
	days := calendarDaysBetween(*lastActivity, now)
	switch {
	case days == 0:
		return current, false
	case days == 1:
		return current + 1, true
	default:
		return 1, true
	}
}

func calendarDaysBetween(earlier, later time.Time) int {
	ey, em, ed := earlier.Date()
	ly, lm, ld := later.Date()
	start := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	end := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// touchStreak applies the streak rules for activity at now. LastActivity is
// left alone on the same-day no-change branch.
func (s *ProgressService) touchStreak(progress *models.UserProgress, now time.Time) {
	streak, changed := NextStreak(progress.CurrentStreak, progress.LastActivity, now)
	if !changed {
		return
	}
	progress.CurrentStreak = streak
	if streak > progress.LongestStreak {
		progress.LongestStreak = streak
	}
	progress.LastActivity = &now
}

// sortAttemptsNewestFirst orders attempts by submission time descending.
// Attempts from different modules interleave in time, so the per-module
// concatenation order is not enough.
func sortAttemptsNewestFirst(attempts []models.QuizAttempt) []models.QuizAttempt {
	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].SubmittedAt.After(attempts[j].SubmittedAt)
	})
	return attempts
}

type AttemptPage struct {
	Attempts []models.QuizAttempt `json:"attempts"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	Limit    int                  `json:"limit"`
	PassRate float64              `json:"passRate"`
}

// Attempts returns one page of the user's attempt history, newest first,
// along with the overall pass rate.
func (s *ProgressService) Attempts(ctx context.Context, userID string, page, limit int) (*AttemptPage, error) {
	progress, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	all := sortAttemptsNewestFirst(progress.AllAttempts())

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}

	passRate := 0.0
	if progress.Statistics.TotalQuizzesAttempted > 0 {
		passRate = float64(progress.Statistics.TotalQuizzesPassed) /
			float64(progress.Statistics.TotalQuizzesAttempted) * 100
	}

	return &AttemptPage{
		Attempts: all[start:end],
		Total:    len(all),
		Page:     page,
		Limit:    limit,
		PassRate: passRate,
	}, nil
}

// Stats returns the user's progress record for the stats endpoint, creating
// it lazily like every non-quiz flow.
func (s *ProgressService) Stats(ctx context.Context, userID string) (*models.UserProgress, error) {
	return s.EnsureProgress(ctx, userID)
}
