package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Olingo/internal/dto"
	"github.com/lshigami/Olingo/internal/model"
	"github.com/lshigami/Olingo/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizService serves read-only catalog views. Authoring happens elsewhere;
// this service never writes.
type QuizService interface {
	GetAllQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizDetails(quizID uint) (*dto.QuizResponseDTO, error)
	// GetQuizForTaking is GetQuizDetails with each question's choices freshly
	// shuffled for display. Permutations are independent per call.
	GetQuizForTaking(quizID uint) (*dto.QuizResponseDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzesWithCount, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all quizzes with question count from repository")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	summaries := make([]dto.QuizSummaryDTO, 0, len(quizzesWithCount))
	for _, qwc := range quizzesWithCount {
		summaries = append(summaries, dto.QuizSummaryDTO{
			ID:            qwc.Quiz.ID,
			Title:         qwc.Quiz.Title,
			Description:   qwc.Quiz.Description,
			DueDate:       qwc.Quiz.DueDate,
			QuestionCount: qwc.QuestionCount,
			CreatedAt:     qwc.Quiz.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *quizService) GetQuizDetails(quizID uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("Failed to get quiz details from repository")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}
	return buildQuizResponse(quiz, false), nil
}

func (s *quizService) GetQuizForTaking(quizID uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("Failed to get quiz for taking from repository")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}
	return buildQuizResponse(quiz, true), nil
}

func buildQuizResponse(quiz *model.Quiz, shuffle bool) *dto.QuizResponseDTO {
	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("Error copying quiz model to DTO")
	}

	resp.Questions = make([]dto.QuestionResponseDTO, len(quiz.Questions))
	for i, question := range quiz.Questions {
		choices := question.Choices
		if shuffle {
			choices = ShuffleChoices(choices)
		}
		choiceDTOs := make([]dto.ChoiceResponseDTO, len(choices))
		for j, choice := range choices {
			choiceDTOs[j] = dto.ChoiceResponseDTO{ID: choice.ID, Text: choice.Text}
		}
		resp.Questions[i] = dto.QuestionResponseDTO{
			ID:       question.ID,
			QuizID:   question.QuizID,
			Text:     question.Text,
			Type:     question.Type,
			Position: question.Position,
			ImageURL: question.ImageURL,
			AudioURL: question.AudioURL,
			Passage:  question.Passage,
			Choices:  choiceDTOs,
		}
	}
	return &resp
}
