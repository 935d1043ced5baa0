package service

import (
	"context"
	"math"
	"strconv"
	"time"

	"scamwise-backend/internal/models"
	"scamwise-backend/internal/repository"
)

const (
	// PassThreshold is the fixed pass mark, not configurable per module.
	PassThreshold = 70
	// QuizPassXP is the flat XP award for passing any quiz. Module completion
	// uses the per-module catalog value instead; the two flows are separate
	// on purpose.
	QuizPassXP = 15
)

type QuizService struct {
	Questions *repository.QuestionRepository
	Progress  *ProgressService
}

func NewQuizService(questions *repository.QuestionRepository, progress *ProgressService) *QuizService {
	return &QuizService{Questions: questions, Progress: progress}
}

// GetModuleQuestions returns the quiz-taking view of a module's question
// bank, without correct answers or explanations.
func (s *QuizService) GetModuleQuestions(ctx context.Context, moduleID string) ([]models.PublicQuestion, error) {
	bank, err := s.Questions.FindByModuleID(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if len(bank) == 0 {
		return nil, models.ErrModuleNotFound
	}
	public := make([]models.PublicQuestion, 0, len(bank))
	for i := range bank {
		public = append(public, bank[i].Public())
	}
	return public, nil
}

// Grade scores a submission against a question bank. Submitted answers whose
// question id is not in the bank are skipped and count toward neither total,
// and only the first answer for a question is scored. A bank worth zero
// points grades to 0%, not passed.
func Grade(bank []models.QuizQuestion, answers []models.AnswerSubmission) *models.GradingResult {
	byID := make(map[string]*models.QuizQuestion, len(bank))
	for i := range bank {
		byID[bank[i].ID] = &bank[i]
	}

	result := &models.GradingResult{}
	seen := make(map[string]bool, len(answers))
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok || seen[a.QuestionID] {
			continue
		}
		seen[a.QuestionID] = true
		points := q.PointsOrDefault()
		correct := a.SelectedOption == q.CorrectAnswer

		result.TotalPoints += points
		earned := 0
		if correct {
			earned = points
			result.Score += points
		}
		result.Answers = append(result.Answers, models.AnswerBreakdown{
			QuestionID:     q.ID,
			SelectedOption: a.SelectedOption,
			Correct:        correct,
			Points:         earned,
		})
		result.Feedback = append(result.Feedback, models.QuestionFeedback{
			QuestionID:  q.ID,
			Correct:     correct,
			Explanation: explanationFor(q, a.SelectedOption, correct),
		})
	}

	if result.TotalPoints > 0 {
		result.Percentage = int(math.Round(float64(result.Score) / float64(result.TotalPoints) * 100))
	}
	result.Passed = result.Percentage >= PassThreshold
	if result.Passed {
		result.XPEarned = QuizPassXP
	}
	return result
}

func explanationFor(q *models.QuizQuestion, selected int, correct bool) string {
	if correct {
		return q.CorrectExplanation
	}
	// Absent when no explanation was authored for the chosen option.
	return q.IncorrectExplanations[strconv.Itoa(selected)]
}

// SubmitQuiz grades a submission, records the attempt on the user's progress
// and awards the flat pass XP.
func (s *QuizService) SubmitQuiz(ctx context.Context, userID, quizID, moduleID string, answers []models.AnswerSubmission, timeSpentSeconds int) (*models.GradingResult, error) {
	bank, err := s.Questions.FindByModuleID(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if len(bank) == 0 {
		return nil, models.ErrModuleNotFound
	}

	result := Grade(bank, answers)

	attempt := models.QuizAttempt{
		QuizID:           quizID,
		ModuleID:         moduleID,
		Score:            result.Score,
		TotalPoints:      result.TotalPoints,
		Percentage:       result.Percentage,
		Passed:           result.Passed,
		TimeSpentSeconds: timeSpentSeconds,
		Answers:          result.Answers,
		SubmittedAt:      time.Now(),
	}
	if err := s.Progress.RecordAttempt(ctx, userID, moduleID, attempt); err != nil {
		return nil, err
	}
	if result.Passed {
		if _, _, err := s.Progress.AwardXP(ctx, userID, result.XPEarned); err != nil {
			return nil, err
		}
	}
	return result, nil
}
