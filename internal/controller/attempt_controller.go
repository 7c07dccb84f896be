package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Olingo/internal/dto"
	"github.com/lshigami/Olingo/internal/service"
	"github.com/rs/zerolog/log"
)

type AttemptController struct {
	gradingService service.GradingService
}

func NewAttemptController(gradingService service.GradingService) *AttemptController {
	return &AttemptController{gradingService: gradingService}
}

// SubmitQuizAttempt godoc
// @Summary Submit answers for an entire quiz
// @Description Grades a complete quiz submission and records the attempt. Unresolvable choice references are treated as unanswered, never as errors. Resubmission always creates a new attempt.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param quiz_id path int true "ID of the quiz being attempted"
// @Param submission body dto.QuizSubmissionDTO true "Learner ID, start timestamp and the question-to-choice selections"
// @Success 201 {object} dto.AttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Quiz ID or request body"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Grading transaction failed; nothing was recorded and the submission can be retried"
// @Router /quizzes/{quiz_id}/attempts [post]
func (c *AttemptController) SubmitQuizAttempt(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}

	var req dto.QuizSubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuizAttempt: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint64("quizID", quizID).Uint("userID", req.UserID).Int("answerCount", len(req.Answers)).
		Msg("Received quiz submission")

	attempt, err := c.gradingService.SubmitQuiz(uint(quizID), req, ctx.ClientIP())
	if err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Msg("SubmitQuizAttempt: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit quiz attempt", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// GetAttemptDetails godoc
// @Summary Get details of a graded attempt
// @Description Full attempt view including per-question answers, derived grade/tier, and rank and improvement recomputed against the current ledger.
// @Tags Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id} [get]
func (c *AttemptController) GetAttemptDetails(ctx *gin.Context) {
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Attempt ID format"})
		return
	}
	attempt, err := c.gradingService.GetAttemptDetails(uint(attemptID))
	if err != nil {
		log.Warn().Err(err).Uint64("attemptID", attemptID).Msg("GetAttemptDetails: Attempt not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// GetUserQuizAttempts godoc
// @Summary List attempts on a quiz
// @Description Attempt summaries for a quiz, newest first. Pass user_id to narrow to one learner's history.
// @Tags Attempts
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param user_id query int false "Learner ID to filter attempts"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{quiz_id}/my-attempts [get]
func (c *AttemptController) GetUserQuizAttempts(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}

	var userID *uint
	if userIDStr := ctx.Query("user_id"); userIDStr != "" {
		val, err := strconv.ParseUint(userIDStr, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format in query"})
			return
		}
		uID := uint(val)
		userID = &uID
	}

	attempts, err := c.gradingService.GetUserAttemptsForQuiz(uint(quizID), userID)
	if err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Msg("GetUserQuizAttempts: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempts", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
