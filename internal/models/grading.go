package models

type AnswerSubmission struct {
	QuestionID     string `json:"questionId" binding:"required"`
	SelectedOption int    `json:"selectedOption"`
}

// QuestionFeedback is the per-question view returned to the client after
// grading: which explanation applies, never the correct option itself for
// questions the user got wrong.
type QuestionFeedback struct {
	QuestionID  string `json:"questionId"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
}

type GradingResult struct {
	Score       int                `json:"score"`
	TotalPoints int                `json:"totalPoints"`
	Percentage  int                `json:"percentage"`
	Passed      bool               `json:"passed"`
	XPEarned    int                `json:"xpEarned"`
	Answers     []AnswerBreakdown  `json:"answers"`
	Feedback    []QuestionFeedback `json:"feedback"`
}
