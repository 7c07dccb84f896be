package service

import (
	"fmt"
	"math"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Olingo/internal/dto"
	"github.com/lshigami/Olingo/internal/model"
	"github.com/lshigami/Olingo/internal/repository"
	"github.com/rs/zerolog/log"
)

// GradingService turns a learner's raw submission into a persisted, scored
// attempt, and serves graded attempts back out of the ledger.
type GradingService interface {
	SubmitQuiz(quizID uint, req dto.QuizSubmissionDTO, clientIP string) (*dto.AttemptDetailDTO, error)
	GetAttemptDetails(attemptID uint) (*dto.AttemptDetailDTO, error)
	GetUserAttemptsForQuiz(quizID uint, userID *uint) ([]dto.AttemptSummaryDTO, error)
}

type gradingService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	statsSvc    StatsService
}

func NewGradingService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	statsSvc StatsService,
) GradingService {
	return &gradingService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		statsSvc:    statsSvc,
	}
}

// gradedSubmission carries the outcome of grading before anything is persisted.
type gradedSubmission struct {
	answers        []model.Answer
	score          int
	votedChoiceIDs []uint
}

// gradeSubmission evaluates selections against every question of the quiz,
// in question order. A selection that does not resolve within its question's
// own choice set (stale id, or a choice belonging to another question) is
// treated as unanswered, never as a failure. Every resolved selection queues
// exactly one vote for its choice.
func gradeSubmission(questions []model.Question, selections map[uint]*uint) gradedSubmission {
	graded := gradedSubmission{answers: make([]model.Answer, 0, len(questions))}

	for _, question := range questions {
		answer := model.Answer{QuestionID: question.ID}

		if selectedID := selections[question.ID]; selectedID != nil {
			for _, choice := range question.Choices {
				if choice.ID == *selectedID {
					id := choice.ID
					answer.ChoiceID = &id
					answer.IsCorrect = choice.IsCorrect
					graded.votedChoiceIDs = append(graded.votedChoiceIDs, id)
					break
				}
			}
			if answer.ChoiceID == nil {
				log.Warn().Uint("questionID", question.ID).Uint("choiceID", *selectedID).
					Msg("gradeSubmission: Submitted choice does not belong to the question, treating as unanswered")
			}
		}

		if answer.IsCorrect {
			graded.score++
		}
		graded.answers = append(graded.answers, answer)
	}
	return graded
}

// scorePercentage computes score/total*100 at two-decimal precision.
// A quiz with zero questions scores 0, not a division fault.
func scorePercentage(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(score)/float64(total)*10000) / 100
}

// SubmitQuiz grades a full quiz submission and commits the attempt, its
// answers and the choice vote increments as one transaction. A failed commit
// leaves no partial state behind, so the learner can simply resubmit.
func (s *gradingService) SubmitQuiz(quizID uint, req dto.QuizSubmissionDTO, clientIP string) (*dto.AttemptDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("SubmitQuiz: Quiz not found")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}

	questionIDs := make(map[uint]bool, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questionIDs[q.ID] = true
	}

	selections := make(map[uint]*uint, len(req.Answers))
	for _, submitted := range req.Answers {
		if !questionIDs[submitted.QuestionID] {
			log.Warn().Uint("questionID", submitted.QuestionID).Uint("quizID", quizID).
				Msg("SubmitQuiz: Submitted answer for a question not part of this quiz, skipping")
			continue
		}
		selections[submitted.QuestionID] = submitted.ChoiceID
	}

	graded := gradeSubmission(quiz.Questions, selections)

	completedAt := time.Now()
	timeTaken := int64(completedAt.Sub(req.StartedAt).Seconds())
	if timeTaken < 0 {
		log.Warn().Uint("quizID", quizID).Time("startedAt", req.StartedAt).
			Msg("SubmitQuiz: Start timestamp is after completion, clamping time taken to zero")
		timeTaken = 0
	}

	attempt := model.Attempt{
		QuizID:           quizID,
		UserID:           req.UserID,
		Score:            graded.score,
		TotalQuestions:   len(quiz.Questions),
		Percentage:       scorePercentage(graded.score, len(quiz.Questions)),
		TimeTakenSeconds: timeTaken,
		StartedAt:        req.StartedAt,
		CompletedAt:      completedAt,
		ClientIP:         clientIP,
		Answers:          graded.answers,
	}

	if err := s.attemptRepo.CreateWithVotes(&attempt, graded.votedChoiceIDs); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("SubmitQuiz: Transaction failed, no attempt was recorded")
		return nil, fmt.Errorf("failed to record attempt for quiz %d: %w", quizID, err)
	}

	detailed, err := s.attemptRepo.FindByIDWithDetails(attempt.ID)
	if err != nil {
		// The attempt is committed; answer from what we already hold.
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("SubmitQuiz: Failed to reload attempt, building response from in-memory state")
		attempt.Quiz = *quiz
		detailed = &attempt
	}
	return s.buildAttemptDetail(detailed)
}

// GetAttemptDetails returns the full graded view of one attempt, with rank
// and improvement recomputed against the ledger's current contents.
func (s *gradingService) GetAttemptDetails(attemptID uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(attemptID)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("GetAttemptDetails: Attempt not found")
		return nil, fmt.Errorf("attempt not found with ID %d: %w", attemptID, err)
	}
	return s.buildAttemptDetail(attempt)
}

// GetUserAttemptsForQuiz lists attempts on a quiz, newest first, optionally
// filtered to one learner.
func (s *gradingService) GetUserAttemptsForQuiz(quizID uint, userID *uint) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByQuizAndUser(quizID, userID, 0)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetUserAttemptsForQuiz: Failed to fetch attempts")
		return nil, fmt.Errorf("error fetching attempts for quiz %d: %w", quizID, err)
	}

	summaries := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.AttemptSummaryDTO
		if err := copier.Copy(&summary, &attempt); err != nil {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("GetUserAttemptsForQuiz: Error copying attempt to summary DTO")
			continue
		}
		summary.Grade = model.LetterGrade(attempt.Percentage)
		summary.Tier = model.PerformanceTier(attempt.Percentage)
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *gradingService) buildAttemptDetail(attempt *model.Attempt) (*dto.AttemptDetailDTO, error) {
	var resp dto.AttemptDetailDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("buildAttemptDetail: Error copying attempt to DTO")
		return nil, fmt.Errorf("error preparing attempt response: %w", err)
	}
	resp.QuizTitle = attempt.Quiz.Title
	resp.Grade = model.LetterGrade(attempt.Percentage)
	resp.Tier = model.PerformanceTier(attempt.Percentage)

	resp.Answers = make([]dto.AnswerResponseDTO, len(attempt.Answers))
	for i, answer := range attempt.Answers {
		resp.Answers[i] = dto.AnswerResponseDTO{
			ID:           answer.ID,
			QuestionID:   answer.QuestionID,
			QuestionText: answer.Question.Text,
			ChoiceID:     answer.ChoiceID,
			IsCorrect:    answer.IsCorrect,
		}
		if answer.Choice != nil {
			text := answer.Choice.Text
			resp.Answers[i].ChoiceText = &text
		}
	}

	rank, err := s.statsSvc.AttemptRank(attempt)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attempt.ID).Msg("buildAttemptDetail: Failed to compute rank")
	} else {
		resp.Rank = &rank
	}

	improvement, err := s.statsSvc.AttemptImprovement(attempt)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attempt.ID).Msg("buildAttemptDetail: Failed to compute improvement")
	} else {
		resp.Improvement = improvement
	}

	return &resp, nil
}
