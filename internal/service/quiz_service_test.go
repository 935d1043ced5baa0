package service

import (
	"testing"

	"scamwise-backend/internal/models"
)

func bankOfTwo() []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			ID:                 "q1",
			ModuleID:           "phishing-basics",
			Question:           "An email asks you to verify your bank login via a link. What do you do?",
			Options:            []string{"Click the link", "Go to the bank site directly", "Reply with details", "Forward to friends"},
			CorrectAnswer:      1,
			CorrectExplanation: "Always navigate to the bank yourself instead of trusting links.",
			IncorrectExplanations: map[string]string{
				"0": "Links in unsolicited mail routinely lead to credential-harvesting pages.",
			},
			Points: 10,
		},
		{
			ID:            "q2",
			ModuleID:      "phishing-basics",
			Question:      "Which sender address is most suspicious?",
			Options:       []string{"support@yourbank.com", "support@yourbank-secure.help", "noreply@yourbank.com", "alerts@yourbank.com"},
			CorrectAnswer: 1,
			Points:        10,
		},
	}
}

func TestGradeHalfCorrect(t *testing.T) {
	answers := []models.AnswerSubmission{
		{QuestionID: "q1", SelectedOption: 1},
		{QuestionID: "q2", SelectedOption: 0},
	}
	result := Grade(bankOfTwo(), answers)

	if result.Score != 10 {
		t.Errorf("expected score 10, got %d", result.Score)
	}
	if result.TotalPoints != 20 {
		t.Errorf("expected totalPoints 20, got %d", result.TotalPoints)
	}
	if result.Percentage != 50 {
		t.Errorf("expected percentage 50, got %d", result.Percentage)
	}
	if result.Passed {
		t.Error("50%% should not pass")
	}
	if result.XPEarned != 0 {
		t.Errorf("failed quiz should earn 0 XP, got %d", result.XPEarned)
	}
}

func TestGradePassAwardsFlatXP(t *testing.T) {
	answers := []models.AnswerSubmission{
		{QuestionID: "q1", SelectedOption: 1},
		{QuestionID: "q2", SelectedOption: 1},
	}
	result := Grade(bankOfTwo(), answers)

	if result.Percentage != 100 {
		t.Errorf("expected percentage 100, got %d", result.Percentage)
	}
	if !result.Passed {
		t.Error("100%% should pass")
	}
	if result.XPEarned != QuizPassXP {
		t.Errorf("expected %d XP on pass, got %d", QuizPassXP, result.XPEarned)
	}
}

func TestGradePercentageRounding(t *testing.T) {
	bank := []models.QuizQuestion{
		{ID: "a", CorrectAnswer: 0, Points: 10},
		{ID: "b", CorrectAnswer: 0, Points: 10},
		{ID: "c", CorrectAnswer: 0, Points: 10},
	}
	answers := []models.AnswerSubmission{
		{QuestionID: "a", SelectedOption: 0},
		{QuestionID: "b", SelectedOption: 0},
		{QuestionID: "c", SelectedOption: 1},
	}
	result := Grade(bank, answers)

	// 20/30 rounds to 67
	if result.Percentage != 67 {
		t.Errorf("expected percentage 67, got %d", result.Percentage)
	}
	if result.Passed {
		t.Error("67%% is below the 70%% threshold")
	}
}

func TestGradePassThresholdBoundary(t *testing.T) {
	// 7 of 10 questions correct lands exactly on the threshold.
	var bank []models.QuizQuestion
	var answers []models.AnswerSubmission
	for i := 0; i < 10; i++ {
		id := string(rune('a' + i))
		bank = append(bank, models.QuizQuestion{ID: id, CorrectAnswer: 0, Points: 10})
		selected := 0
		if i >= 7 {
			selected = 1
		}
		answers = append(answers, models.AnswerSubmission{QuestionID: id, SelectedOption: selected})
	}
	result := Grade(bank, answers)

	if result.Percentage != 70 {
		t.Errorf("expected percentage 70, got %d", result.Percentage)
	}
	if !result.Passed {
		t.Error("exactly 70%% should pass")
	}
}

func TestGradeSkipsUnknownQuestions(t *testing.T) {
	answers := []models.AnswerSubmission{
		{QuestionID: "q1", SelectedOption: 1},
		{QuestionID: "ghost", SelectedOption: 2},
	}
	result := Grade(bankOfTwo(), answers)

	if result.TotalPoints != 10 {
		t.Errorf("unknown question should not count, expected totalPoints 10, got %d", result.TotalPoints)
	}
	if len(result.Answers) != 1 {
		t.Errorf("expected 1 graded answer, got %d", len(result.Answers))
	}
	if result.Percentage != 100 {
		t.Errorf("expected percentage 100, got %d", result.Percentage)
	}
}

func TestGradeScoresRepeatedQuestionOnce(t *testing.T) {
	// Repeating a correct answer must not shrink the denominator: the
	// second occurrence is ignored, not scored again.
	answers := []models.AnswerSubmission{
		{QuestionID: "q1", SelectedOption: 1},
		{QuestionID: "q1", SelectedOption: 1},
	}
	result := Grade(bankOfTwo(), answers)

	if result.TotalPoints != 10 {
		t.Errorf("expected totalPoints 10, got %d", result.TotalPoints)
	}
	if result.Score != 10 {
		t.Errorf("expected score 10, got %d", result.Score)
	}
	if len(result.Answers) != 1 {
		t.Errorf("expected 1 graded answer, got %d", len(result.Answers))
	}

	// first answer wins: a wrong retry of the same question changes nothing
	answers = []models.AnswerSubmission{
		{QuestionID: "q1", SelectedOption: 1},
		{QuestionID: "q1", SelectedOption: 0},
	}
	result = Grade(bankOfTwo(), answers)
	if result.Score != 10 || result.TotalPoints != 10 {
		t.Errorf("expected 10/10 with first answer scored, got %d/%d", result.Score, result.TotalPoints)
	}
}

func TestGradeZeroTotalPoints(t *testing.T) {
	cases := []struct {
		name    string
		answers []models.AnswerSubmission
	}{
		{"no answers", nil},
		{"only unknown ids", []models.AnswerSubmission{{QuestionID: "nope", SelectedOption: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Grade(bankOfTwo(), tc.answers)
			if result.TotalPoints != 0 {
				t.Errorf("expected totalPoints 0, got %d", result.TotalPoints)
			}
			if result.Percentage != 0 {
				t.Errorf("zero-point grading must yield 0%%, got %d", result.Percentage)
			}
			if result.Passed {
				t.Error("zero-point grading must not pass")
			}
		})
	}
}

func TestGradeExplanations(t *testing.T) {
	answers := []models.AnswerSubmission{
		{QuestionID: "q1", SelectedOption: 1}, // correct
	}
	result := Grade(bankOfTwo(), answers)
	if got := result.Feedback[0].Explanation; got != "Always navigate to the bank yourself instead of trusting links." {
		t.Errorf("expected the correct-answer explanation, got %q", got)
	}

	answers[0].SelectedOption = 0 // wrong, has an authored explanation
	result = Grade(bankOfTwo(), answers)
	if got := result.Feedback[0].Explanation; got != "Links in unsolicited mail routinely lead to credential-harvesting pages." {
		t.Errorf("expected the option-specific explanation, got %q", got)
	}

	answers[0].SelectedOption = 2 // wrong, no explanation authored
	result = Grade(bankOfTwo(), answers)
	if got := result.Feedback[0].Explanation; got != "" {
		t.Errorf("expected no explanation, got %q", got)
	}
}

func TestGradeDefaultPoints(t *testing.T) {
	bank := []models.QuizQuestion{
		{ID: "q1", CorrectAnswer: 0},             // unset -> 10
		{ID: "q2", CorrectAnswer: 0, Points: 60}, // above cap -> 10
		{ID: "q3", CorrectAnswer: 0, Points: 25},
	}
	answers := []models.AnswerSubmission{
		{QuestionID: "q1", SelectedOption: 0},
		{QuestionID: "q2", SelectedOption: 0},
		{QuestionID: "q3", SelectedOption: 0},
	}
	result := Grade(bank, answers)
	if result.TotalPoints != 45 {
		t.Errorf("expected totalPoints 45, got %d", result.TotalPoints)
	}
}
