package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	QuizID   uint   `json:"quiz_id" gorm:"not null;index"`
	Text     string `json:"text" gorm:"type:text;not null"`
	Type     string `json:"type" gorm:"not null"` // "multiple_choice", "true_false", "reading", "listening" - descriptive only, grading is identical for all types
	Position int    `json:"position" gorm:"not null"`

	// Optional media references; file storage and delivery live outside this service.
	ImageURL *string `json:"image_url,omitempty"`
	AudioURL *string `json:"audio_url,omitempty"`
	Passage  *string `json:"passage,omitempty" gorm:"type:text"`

	Choices   []Choice       `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
