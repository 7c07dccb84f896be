package model

import (
	"time"

	"gorm.io/gorm"
)

// Attempt is one learner's complete graded submission of a quiz. It is
// created fully graded in a single transaction together with its Answers and
// is never updated afterwards.
type Attempt struct {
	ID     uint `gorm:"primarykey" json:"id"`
	QuizID uint `json:"quiz_id" gorm:"not null;index"`
	Quiz   Quiz `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	UserID uint `json:"user_id" gorm:"not null;index"`

	Score            int     `json:"score" gorm:"not null"`
	TotalQuestions   int     `json:"total_questions" gorm:"not null"` // Question count of the quiz at grading time
	Percentage       float64 `json:"percentage" gorm:"not null"`
	TimeTakenSeconds int64   `json:"time_taken_seconds" gorm:"not null"`

	StartedAt   time.Time `json:"started_at" gorm:"not null"`
	CompletedAt time.Time `json:"completed_at" gorm:"not null;index"`
	ClientIP    string    `json:"client_ip,omitempty"` // Diagnostic only

	Answers   []Answer       `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
