package models

const (
	DefaultQuestionPoints = 10
	MinQuestionPoints     = 1
	MaxQuestionPoints     = 50
)

type QuizQuestion struct {
	ID       string   `bson:"_id,omitempty" json:"id"`
	ModuleID string   `bson:"module_id" json:"moduleId"`
	Question string   `bson:"question" json:"question"`
	Options  []string `bson:"options" json:"options"`
	// Index into Options. Never serialized on quiz-taking endpoints.
	CorrectAnswer      int    `bson:"correct_answer" json:"correctAnswer"`
	CorrectExplanation string `bson:"correct_explanation" json:"correctExplanation"`
	// Keyed by the string form of the selected option index.
	IncorrectExplanations map[string]string `bson:"incorrect_explanations" json:"incorrectExplanations"`
	Points                int               `bson:"points" json:"points"`
	Difficulty            string            `bson:"difficulty" json:"difficulty"`
}

// PointsOrDefault normalizes the per-question point value into the allowed range.
func (q *QuizQuestion) PointsOrDefault() int {
	if q.Points < MinQuestionPoints || q.Points > MaxQuestionPoints {
		return DefaultQuestionPoints
	}
	return q.Points
}

// PublicQuestion is the quiz-taking view of a question, stripped of the
// correct answer and all explanations.
type PublicQuestion struct {
	ID         string   `json:"id"`
	ModuleID   string   `json:"moduleId"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Points     int      `json:"points"`
	Difficulty string   `json:"difficulty"`
}

func (q *QuizQuestion) Public() PublicQuestion {
	return PublicQuestion{
		ID:         q.ID,
		ModuleID:   q.ModuleID,
		Question:   q.Question,
		Options:    q.Options,
		Points:     q.PointsOrDefault(),
		Difficulty: q.Difficulty,
	}
}
