package repository

import (
	"github.com/lshigami/Olingo/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	// CountByQuestion returns how many answers exist for the question across
	// all attempts, and how many of them were correct.
	CountByQuestion(questionID uint) (total int64, correct int64, err error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) CountByQuestion(questionID uint) (int64, int64, error) {
	var total, correct int64
	if err := r.db.Model(&model.Answer{}).
		Where("question_id = ?", questionID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&model.Answer{}).
		Where("question_id = ? AND is_correct = ?", questionID, true).
		Count(&correct).Error; err != nil {
		return 0, 0, err
	}
	return total, correct, nil
}
