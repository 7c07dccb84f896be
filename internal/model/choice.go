package model

import (
	"time"

	"gorm.io/gorm"
)

type Choice struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	Text       string `json:"text" gorm:"not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"not null;default:false"`
	Position   int    `json:"position" gorm:"not null"`

	// Votes counts how many times this choice has ever been selected across
	// all attempts. Incremented only via an atomic SQL expression inside the
	// grading transaction, never read-modified in Go.
	Votes int64 `json:"votes" gorm:"not null;default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
