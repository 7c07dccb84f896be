package dto

import "time"

// ChoiceResponseDTO is a choice as shown to a learner taking a quiz.
// Correctness and vote counts are deliberately not exposed on this surface.
type ChoiceResponseDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// QuestionResponseDTO is used for displaying question details to learners.
type QuestionResponseDTO struct {
	ID       uint                `json:"id"`
	QuizID   uint                `json:"quiz_id"`
	Text     string              `json:"text"`
	Type     string              `json:"type"`
	Position int                 `json:"position"`
	ImageURL *string             `json:"image_url,omitempty"`
	AudioURL *string             `json:"audio_url,omitempty"`
	Passage  *string             `json:"passage,omitempty"`
	Choices  []ChoiceResponseDTO `json:"choices"`
}

// QuizResponseDTO is used for displaying full quiz details to learners.
type QuizResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	DueDate     time.Time             `json:"due_date"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// QuizSummaryDTO is used for listing quizzes available to learners.
type QuizSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	DueDate       time.Time `json:"due_date"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}
