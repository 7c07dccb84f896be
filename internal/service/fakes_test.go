package service

import (
	"sort"
	"time"

	"github.com/lshigami/Olingo/internal/model"
	"github.com/lshigami/Olingo/internal/repository"
	"gorm.io/gorm"
)

/* ---------------- In-memory fakes satisfying the repository interfaces ---------------- */

type fakeQuizRepo struct {
	quizzes map[uint]*model.Quiz
}

func newFakeQuizRepo(quizzes ...*model.Quiz) *fakeQuizRepo {
	repo := &fakeQuizRepo{quizzes: map[uint]*model.Quiz{}}
	for _, quiz := range quizzes {
		repo.quizzes[quiz.ID] = quiz
	}
	return repo
}

func (r *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (r *fakeQuizRepo) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	return r.FindByID(id)
}

func (r *fakeQuizRepo) FindAllWithQuestionCount() ([]repository.QuizWithQuestionCount, error) {
	var results []repository.QuizWithQuestionCount
	for _, quiz := range r.quizzes {
		results = append(results, repository.QuizWithQuestionCount{Quiz: *quiz, QuestionCount: len(quiz.Questions)})
	}
	return results, nil
}

type fakeQuestionRepo struct {
	questions []model.Question
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	for i := range r.questions {
		if r.questions[i].ID == id {
			return &r.questions[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeQuestionRepo) FindByQuizID(quizID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		if q.QuizID == quizID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) FindByQuizIDWithChoices(quizID uint) ([]model.Question, error) {
	return r.FindByQuizID(quizID)
}

type fakeAttemptRepo struct {
	attempts   []model.Attempt
	votes      map[uint]int64
	nextID     uint
	failCreate bool
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{votes: map[uint]int64{}, nextID: 1}
}

func (r *fakeAttemptRepo) CreateWithVotes(attempt *model.Attempt, votedChoiceIDs []uint) error {
	if r.failCreate {
		return gorm.ErrInvalidTransaction
	}
	attempt.ID = r.nextID
	r.nextID++
	for i := range attempt.Answers {
		attempt.Answers[i].ID = r.nextID
		r.nextID++
		attempt.Answers[i].AttemptID = attempt.ID
	}
	r.attempts = append(r.attempts, *attempt)
	for _, choiceID := range votedChoiceIDs {
		r.votes[choiceID]++
	}
	return nil
}

func (r *fakeAttemptRepo) FindByIDWithDetails(id uint) (*model.Attempt, error) {
	for i := range r.attempts {
		if r.attempts[i].ID == id {
			attempt := r.attempts[i]
			return &attempt, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAttemptRepo) FindAllByQuizAndUser(quizID uint, userID *uint, limit int) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, attempt := range r.attempts {
		if attempt.QuizID != quizID {
			continue
		}
		if userID != nil && attempt.UserID != *userID {
			continue
		}
		out = append(out, attempt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAttemptRepo) CountByQuiz(quizID uint) (int64, error) {
	var count int64
	for _, attempt := range r.attempts {
		if attempt.QuizID == quizID {
			count++
		}
	}
	return count, nil
}

func (r *fakeAttemptRepo) AveragePercentageByQuiz(quizID uint) (float64, error) {
	var sum float64
	var count int64
	for _, attempt := range r.attempts {
		if attempt.QuizID == quizID {
			sum += attempt.Percentage
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}

func (r *fakeAttemptRepo) PercentagesByQuiz(quizID uint) ([]float64, error) {
	var out []float64
	for _, attempt := range r.attempts {
		if attempt.QuizID == quizID {
			out = append(out, attempt.Percentage)
		}
	}
	return out, nil
}

func (r *fakeAttemptRepo) CountByQuizWithHigherPercentage(quizID uint, percentage float64, excludeAttemptID uint) (int64, error) {
	var count int64
	for _, attempt := range r.attempts {
		if attempt.QuizID == quizID && attempt.ID != excludeAttemptID && attempt.Percentage > percentage {
			count++
		}
	}
	return count, nil
}

func (r *fakeAttemptRepo) FindPriorAttempt(userID, quizID uint, before time.Time, excludeAttemptID uint) (*model.Attempt, error) {
	var prior *model.Attempt
	for i := range r.attempts {
		attempt := &r.attempts[i]
		if attempt.UserID != userID || attempt.QuizID != quizID || attempt.ID == excludeAttemptID {
			continue
		}
		if attempt.CompletedAt.After(before) {
			continue
		}
		if prior == nil || attempt.CompletedAt.After(prior.CompletedAt) {
			prior = attempt
		}
	}
	if prior == nil {
		return nil, gorm.ErrRecordNotFound
	}
	found := *prior
	return &found, nil
}

func (r *fakeAttemptRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	for _, attempt := range r.attempts {
		if attempt.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeAttemptRepo) CountDistinctQuizzesByUser(userID uint) (int64, error) {
	quizzes := map[uint]bool{}
	for _, attempt := range r.attempts {
		if attempt.UserID == userID {
			quizzes[attempt.QuizID] = true
		}
	}
	return int64(len(quizzes)), nil
}

func (r *fakeAttemptRepo) AveragePercentageByUser(userID uint) (float64, error) {
	var sum float64
	var count int64
	for _, attempt := range r.attempts {
		if attempt.UserID == userID {
			sum += attempt.Percentage
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}

type fakeAnswerRepo struct {
	answers []model.Answer
}

func (r *fakeAnswerRepo) CountByQuestion(questionID uint) (int64, int64, error) {
	var total, correct int64
	for _, answer := range r.answers {
		if answer.QuestionID == questionID {
			total++
			if answer.IsCorrect {
				correct++
			}
		}
	}
	return total, correct, nil
}
