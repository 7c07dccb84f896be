package repository

import (
	"time"

	"github.com/lshigami/Olingo/internal/model"
	"gorm.io/gorm"
)

// AttemptRepository is the append-only attempt ledger. Attempts enter through
// CreateWithVotes and are never updated or deleted afterwards; everything
// else is a read.
type AttemptRepository interface {
	// CreateWithVotes persists the attempt with all its answers and
	// increments the vote counter of every choice in votedChoiceIDs, as one
	// all-or-nothing transaction. The increments are SQL expressions, so
	// concurrent submissions hitting the same choice never lose updates.
	CreateWithVotes(attempt *model.Attempt, votedChoiceIDs []uint) error

	FindByIDWithDetails(id uint) (*model.Attempt, error)
	// FindAllByQuizAndUser lists attempts on a quiz, newest completion first,
	// optionally filtered to one learner. limit <= 0 means no limit.
	FindAllByQuizAndUser(quizID uint, userID *uint, limit int) ([]model.Attempt, error)

	CountByQuiz(quizID uint) (int64, error)
	AveragePercentageByQuiz(quizID uint) (float64, error)
	PercentagesByQuiz(quizID uint) ([]float64, error)
	CountByQuizWithHigherPercentage(quizID uint, percentage float64, excludeAttemptID uint) (int64, error)
	FindPriorAttempt(userID, quizID uint, before time.Time, excludeAttemptID uint) (*model.Attempt, error)

	CountByUser(userID uint) (int64, error)
	CountDistinctQuizzesByUser(userID uint) (int64, error)
	AveragePercentageByUser(userID uint) (float64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) CreateWithVotes(attempt *model.Attempt, votedChoiceIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// GORM creates the associated Answers together with the Attempt.
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}
		for _, choiceID := range votedChoiceIDs {
			if err := tx.Model(&model.Choice{}).
				Where("id = ?", choiceID).
				UpdateColumn("votes", gorm.Expr("votes + ?", 1)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *attemptRepository) FindByIDWithDetails(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Quiz").
		Preload("Answers.Question").
		Preload("Answers.Choice").
		First(&attempt, id).Error
	return &attempt, err
}

func (r *attemptRepository) FindAllByQuizAndUser(quizID uint, userID *uint, limit int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	query := r.db.Where("quiz_id = ?", quizID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Order("completed_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) CountByQuiz(quizID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return count, err
}

func (r *attemptRepository) AveragePercentageByQuiz(quizID uint) (float64, error) {
	var avg float64
	err := r.db.Model(&model.Attempt{}).
		Where("quiz_id = ? AND deleted_at IS NULL", quizID).
		Select("COALESCE(AVG(percentage), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *attemptRepository) PercentagesByQuiz(quizID uint) ([]float64, error) {
	var percentages []float64
	err := r.db.Model(&model.Attempt{}).
		Where("quiz_id = ? AND deleted_at IS NULL", quizID).
		Pluck("percentage", &percentages).Error
	return percentages, err
}

func (r *attemptRepository) CountByQuizWithHigherPercentage(quizID uint, percentage float64, excludeAttemptID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).
		Where("quiz_id = ? AND percentage > ? AND id <> ?", quizID, percentage, excludeAttemptID).
		Count(&count).Error
	return count, err
}

func (r *attemptRepository) FindPriorAttempt(userID, quizID uint, before time.Time, excludeAttemptID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Where("user_id = ? AND quiz_id = ? AND completed_at <= ? AND id <> ?", userID, quizID, before, excludeAttemptID).
		Order("completed_at DESC").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *attemptRepository) CountDistinctQuizzesByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Distinct("quiz_id").
		Count(&count).Error
	return count, err
}

func (r *attemptRepository) AveragePercentageByUser(userID uint) (float64, error) {
	var avg float64
	err := r.db.Model(&model.Attempt{}).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Select("COALESCE(AVG(percentage), 0)").
		Scan(&avg).Error
	return avg, err
}
