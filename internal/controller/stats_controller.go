package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Olingo/internal/dto"
	"github.com/lshigami/Olingo/internal/service"
	"github.com/rs/zerolog/log"
)

type StatsController struct {
	statsService service.StatsService
}

func NewStatsController(statsService service.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// GetQuizStats godoc
// @Summary Get analytics for a quiz
// @Description Attempt totals, average percentage, performance distribution, per-question success rates and lifetime per-choice selection shares. All values are recomputed on every request.
// @Tags Stats
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizStatsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{quiz_id}/stats [get]
func (c *StatsController) GetQuizStats(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}
	stats, err := c.statsService.GetQuizStats(uint(quizID))
	if err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Msg("GetQuizStats: Service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetLearnerStats godoc
// @Summary Get analytics for a learner
// @Description Distinct quizzes attempted, total attempts and average percentage across the learner's own attempts. An unknown learner yields all zeros.
// @Tags Stats
// @Produce json
// @Param user_id path int true "Learner ID"
// @Success 200 {object} dto.LearnerStatsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/stats [get]
func (c *StatsController) GetLearnerStats(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format"})
		return
	}
	stats, err := c.statsService.GetLearnerStats(uint(userID))
	if err != nil {
		log.Error().Err(err).Uint64("userID", userID).Msg("GetLearnerStats: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute learner stats", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
