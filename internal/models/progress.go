package models

import "time"

// XPPerLevel is the amount of XP between levels: level = totalXP/500 + 1.
const XPPerLevel = 500

type AnswerBreakdown struct {
	QuestionID     string `bson:"question_id" json:"questionId"`
	SelectedOption int    `bson:"selected_option" json:"selectedOption"`
	Correct        bool   `bson:"correct" json:"correct"`
	Points         int    `bson:"points" json:"points"`
}

type QuizAttempt struct {
	QuizID           string            `bson:"quiz_id" json:"quizId"`
	ModuleID         string            `bson:"module_id" json:"moduleId"`
	Score            int               `bson:"score" json:"score"`
	TotalPoints      int               `bson:"total_points" json:"totalPoints"`
	Percentage       int               `bson:"percentage" json:"percentage"`
	Passed           bool              `bson:"passed" json:"passed"`
	TimeSpentSeconds int               `bson:"time_spent_seconds" json:"timeSpentSeconds"`
	Answers          []AnswerBreakdown `bson:"answers" json:"answers"`
	SubmittedAt      time.Time         `bson:"submitted_at" json:"submittedAt"`
}

type CompletedModule struct {
	ModuleID    string        `bson:"module_id" json:"moduleId"`
	Completed   bool          `bson:"completed" json:"completed"`
	XPEarned    int           `bson:"xp_earned" json:"xpEarned"`
	CompletedAt *time.Time    `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	Attempts    []QuizAttempt `bson:"attempts" json:"attempts"`
}

type ProgressStatistics struct {
	TotalQuizzesAttempted int        `bson:"total_quizzes_attempted" json:"totalQuizzesAttempted"`
	TotalQuizzesPassed    int        `bson:"total_quizzes_passed" json:"totalQuizzesPassed"`
	AverageQuizScore      float64    `bson:"average_quiz_score" json:"averageQuizScore"`
	LastQuizCompletedAt   *time.Time `bson:"last_quiz_completed_at,omitempty" json:"lastQuizCompletedAt,omitempty"`
}

// UserProgress is the single aggregate document for one user's learning state.
// One record per user, enforced by a unique index on user_id.
type UserProgress struct {
	ID            string             `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"user_id" json:"userId"`
	UserName      string             `bson:"user_name" json:"userName"`
	TotalXP       int                `bson:"total_xp" json:"totalXP"`
	Level         int                `bson:"level" json:"level"`
	CurrentStreak int                `bson:"current_streak" json:"currentStreak"`
	LongestStreak int                `bson:"longest_streak" json:"longestStreak"`
	LastActivity  *time.Time         `bson:"last_activity,omitempty" json:"lastActivity,omitempty"`
	Modules       []CompletedModule  `bson:"modules" json:"modules"`
	Statistics    ProgressStatistics `bson:"statistics" json:"statistics"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// LevelForXP derives the level tier from a total XP count.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return totalXP/XPPerLevel + 1
}

// Module returns the completed-module entry for moduleID, or nil.
func (p *UserProgress) Module(moduleID string) *CompletedModule {
	for i := range p.Modules {
		if p.Modules[i].ModuleID == moduleID {
			return &p.Modules[i]
		}
	}
	return nil
}

// EnsureModule returns the completed-module entry for moduleID, creating an
// empty one on first interaction with the module.
func (p *UserProgress) EnsureModule(moduleID string) *CompletedModule {
	if m := p.Module(moduleID); m != nil {
		return m
	}
	p.Modules = append(p.Modules, CompletedModule{ModuleID: moduleID})
	return &p.Modules[len(p.Modules)-1]
}

// AllAttempts flattens attempts across every module, newest last.
func (p *UserProgress) AllAttempts() []QuizAttempt {
	var attempts []QuizAttempt
	for i := range p.Modules {
		attempts = append(attempts, p.Modules[i].Attempts...)
	}
	return attempts
}
