package dto

// --- DTOs for the analytics views ---

// ChoiceStatsDTO reports the lifetime selection share of one choice.
// SelectionRate is driven by the cumulative vote counter, not by Answer
// records, and so keeps counting across administrative re-use of a quiz.
type ChoiceStatsDTO struct {
	ID            uint    `json:"id"`
	Text          string  `json:"text"`
	IsCorrect     bool    `json:"is_correct"`
	Votes         int64   `json:"votes"`
	SelectionRate float64 `json:"selection_rate"`
}

// QuestionStatsDTO reports per-question success among recorded answers.
type QuestionStatsDTO struct {
	ID           uint             `json:"id"`
	Text         string           `json:"text"`
	Type         string           `json:"type"`
	TotalAnswers int64            `json:"total_answers"`
	SuccessRate  float64          `json:"success_rate"`
	Choices      []ChoiceStatsDTO `json:"choices"`
}

// QuizStatsDTO is the quiz-level analytics view.
type QuizStatsDTO struct {
	QuizID            uint               `json:"quiz_id"`
	Title             string             `json:"title"`
	TotalAttempts     int64              `json:"total_attempts"`
	AveragePercentage float64            `json:"average_percentage"`
	Distribution      map[string]int64   `json:"performance_distribution"`
	Questions         []QuestionStatsDTO `json:"questions"`
}

// LearnerStatsDTO is the learner-level analytics view.
type LearnerStatsDTO struct {
	UserID            uint    `json:"user_id"`
	QuizzesAttempted  int64   `json:"quizzes_attempted"`
	TotalAttempts     int64   `json:"total_attempts"`
	AveragePercentage float64 `json:"average_percentage"`
}
