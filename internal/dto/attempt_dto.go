package dto

import "time"

// --- DTOs for quiz submission and graded attempts ---

// SubmittedAnswerDTO is one question's response within a quiz submission.
// A nil ChoiceID (or an absent key) means the question was left unanswered.
type SubmittedAnswerDTO struct {
	QuestionID uint  `json:"question_id" binding:"required"`
	ChoiceID   *uint `json:"choice_id"`
}

// QuizSubmissionDTO is the request DTO for a learner submitting an entire
// quiz in a single post-back. StartedAt is resolved by the host session
// layer when the learner opened the quiz.
type QuizSubmissionDTO struct {
	UserID    uint                 `json:"user_id" binding:"required"`
	StartedAt time.Time            `json:"started_at" binding:"required"`
	Answers   []SubmittedAnswerDTO `json:"answers" binding:"dive"`
}

// AnswerResponseDTO is one graded answer within an attempt detail view.
type AnswerResponseDTO struct {
	ID           uint    `json:"id"`
	QuestionID   uint    `json:"question_id"`
	QuestionText string  `json:"question_text"`
	ChoiceID     *uint   `json:"choice_id,omitempty"`
	ChoiceText *string `json:"choice_text,omitempty"`
	IsCorrect  bool    `json:"is_correct"`
}

// AttemptDetailDTO is the full view of a graded attempt, including the
// derived grade/tier and, when requested against the ledger, the attempt's
// rank and improvement over the learner's prior attempt on the same quiz.
type AttemptDetailDTO struct {
	ID               uint                `json:"id"`
	QuizID           uint                `json:"quiz_id"`
	QuizTitle        string              `json:"quiz_title,omitempty"`
	UserID           uint                `json:"user_id"`
	Score            int                 `json:"score"`
	TotalQuestions   int                 `json:"total_questions"`
	Percentage       float64             `json:"percentage"`
	Grade            string              `json:"grade"`
	Tier             string              `json:"tier"`
	TimeTakenSeconds int64               `json:"time_taken_seconds"`
	StartedAt        time.Time           `json:"started_at"`
	CompletedAt      time.Time           `json:"completed_at"`
	Rank             *int64              `json:"rank,omitempty"`
	Improvement      *float64            `json:"improvement,omitempty"`
	Answers          []AnswerResponseDTO `json:"answers,omitempty"`
}

// AttemptSummaryDTO is for listing a learner's attempts on a quiz.
type AttemptSummaryDTO struct {
	ID             uint      `json:"id"`
	QuizID         uint      `json:"quiz_id"`
	UserID         uint      `json:"user_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	Grade          string    `json:"grade"`
	Tier           string    `json:"tier"`
	CompletedAt    time.Time `json:"completed_at"`
}
