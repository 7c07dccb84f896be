package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/lshigami/Olingo/internal/dto"
	"github.com/lshigami/Olingo/internal/model"
	"github.com/lshigami/Olingo/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StatsService is the read-side analytics layer. Every view is recomputed
// from the attempt ledger and the catalog on each call; nothing is cached or
// stored, and empty inputs yield zero-valued results rather than errors.
type StatsService interface {
	GetQuizStats(quizID uint) (*dto.QuizStatsDTO, error)
	GetLearnerStats(userID uint) (*dto.LearnerStatsDTO, error)

	// AttemptRank is 1 + the number of other attempts on the same quiz with a
	// strictly greater percentage. Tied attempts share a rank.
	AttemptRank(attempt *model.Attempt) (int64, error)
	// AttemptImprovement is the attempt's percentage minus the same learner's
	// next-most-recent attempt on the same quiz; nil when no prior exists.
	AttemptImprovement(attempt *model.Attempt) (*float64, error)
}

type statsService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	answerRepo   repository.AnswerRepository
}

func NewStatsService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
) StatsService {
	return &statsService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
	}
}

func (s *statsService) GetQuizStats(quizID uint) (*dto.QuizStatsDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("GetQuizStats: Quiz not found")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}

	stats := &dto.QuizStatsDTO{
		QuizID: quiz.ID,
		Title:  quiz.Title,
	}

	if stats.TotalAttempts, err = s.attemptRepo.CountByQuiz(quizID); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuizStats: Failed to count attempts")
		return nil, fmt.Errorf("error computing quiz stats: %w", err)
	}
	if stats.AveragePercentage, err = s.attemptRepo.AveragePercentageByQuiz(quizID); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuizStats: Failed to average percentages")
		return nil, fmt.Errorf("error computing quiz stats: %w", err)
	}

	percentages, err := s.attemptRepo.PercentagesByQuiz(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuizStats: Failed to fetch percentages for distribution")
		return nil, fmt.Errorf("error computing quiz stats: %w", err)
	}
	stats.Distribution = tierDistribution(percentages)

	questions, err := s.questionRepo.FindByQuizIDWithChoices(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuizStats: Failed to fetch questions")
		return nil, fmt.Errorf("error computing quiz stats: %w", err)
	}

	stats.Questions = make([]dto.QuestionStatsDTO, 0, len(questions))
	for _, question := range questions {
		total, correct, err := s.answerRepo.CountByQuestion(question.ID)
		if err != nil {
			log.Error().Err(err).Uint("questionID", question.ID).Msg("GetQuizStats: Failed to count answers")
			return nil, fmt.Errorf("error computing quiz stats: %w", err)
		}
		stats.Questions = append(stats.Questions, dto.QuestionStatsDTO{
			ID:           question.ID,
			Text:         question.Text,
			Type:         question.Type,
			TotalAnswers: total,
			SuccessRate:  ratePercent(correct, total),
			Choices:      choiceStats(question.Choices),
		})
	}

	return stats, nil
}

func (s *statsService) GetLearnerStats(userID uint) (*dto.LearnerStatsDTO, error) {
	stats := &dto.LearnerStatsDTO{UserID: userID}
	var err error

	if stats.TotalAttempts, err = s.attemptRepo.CountByUser(userID); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetLearnerStats: Failed to count attempts")
		return nil, fmt.Errorf("error computing learner stats: %w", err)
	}
	if stats.QuizzesAttempted, err = s.attemptRepo.CountDistinctQuizzesByUser(userID); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetLearnerStats: Failed to count distinct quizzes")
		return nil, fmt.Errorf("error computing learner stats: %w", err)
	}
	if stats.AveragePercentage, err = s.attemptRepo.AveragePercentageByUser(userID); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetLearnerStats: Failed to average percentages")
		return nil, fmt.Errorf("error computing learner stats: %w", err)
	}
	return stats, nil
}

func (s *statsService) AttemptRank(attempt *model.Attempt) (int64, error) {
	higher, err := s.attemptRepo.CountByQuizWithHigherPercentage(attempt.QuizID, attempt.Percentage, attempt.ID)
	if err != nil {
		return 0, fmt.Errorf("error computing rank for attempt %d: %w", attempt.ID, err)
	}
	return higher + 1, nil
}

func (s *statsService) AttemptImprovement(attempt *model.Attempt) (*float64, error) {
	prior, err := s.attemptRepo.FindPriorAttempt(attempt.UserID, attempt.QuizID, attempt.CompletedAt, attempt.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // First attempt on this quiz
		}
		return nil, fmt.Errorf("error computing improvement for attempt %d: %w", attempt.ID, err)
	}
	improvement := math.Round((attempt.Percentage-prior.Percentage)*100) / 100
	return &improvement, nil
}

// tierDistribution buckets percentages into the five performance tiers. The
// buckets are disjoint and cover [0, 100], so every attempt lands in exactly
// one; tiers with no attempts report zero.
func tierDistribution(percentages []float64) map[string]int64 {
	distribution := make(map[string]int64, 5)
	for _, tier := range model.Tiers() {
		distribution[tier] = 0
	}
	for _, percentage := range percentages {
		distribution[model.PerformanceTier(percentage)]++
	}
	return distribution
}

// choiceStats derives lifetime selection shares from the choice vote
// counters. These deliberately do not use Answer records: votes accumulate
// forever, one per resolved selection, per the counter's contract.
func choiceStats(choices []model.Choice) []dto.ChoiceStatsDTO {
	var totalVotes int64
	for _, choice := range choices {
		totalVotes += choice.Votes
	}

	stats := make([]dto.ChoiceStatsDTO, len(choices))
	for i, choice := range choices {
		stats[i] = dto.ChoiceStatsDTO{
			ID:            choice.ID,
			Text:          choice.Text,
			IsCorrect:     choice.IsCorrect,
			Votes:         choice.Votes,
			SelectionRate: ratePercent(choice.Votes, totalVotes),
		}
	}
	return stats
}

// ratePercent is part/whole*100 at two-decimal precision, 0 when whole is 0.
func ratePercent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*10000) / 100
}
