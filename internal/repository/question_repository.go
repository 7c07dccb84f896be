package repository

import (
	"github.com/lshigami/Olingo/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByID(id uint) (*model.Question, error)
	FindByQuizID(quizID uint) ([]model.Question, error)
	FindByQuizIDWithChoices(quizID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByQuizID(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("quiz_id = ?", quizID).Order("position ASC").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByQuizIDWithChoices(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("quiz_id = ?", quizID).
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.position ASC")
		}).
		Order("position ASC").
		Find(&questions).Error
	return questions, err
}
