package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer records one learner's response to one question within an attempt.
// ChoiceID is nil when the question was left unanswered (or the submitted
// choice id could not be resolved). IsCorrect is fixed at grading time and
// never recomputed.
type Answer struct {
	ID         uint     `gorm:"primarykey" json:"id"`
	AttemptID  uint     `json:"attempt_id" gorm:"not null;uniqueIndex:idx_attempt_question"`
	QuestionID uint     `json:"question_id" gorm:"not null;uniqueIndex:idx_attempt_question"`
	Question   Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	ChoiceID   *uint    `json:"choice_id,omitempty" gorm:"index"`
	Choice     *Choice  `json:"choice,omitempty" gorm:"foreignKey:ChoiceID"`
	IsCorrect  bool     `json:"is_correct" gorm:"not null"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
