package service

import (
	"testing"
	"time"

	"github.com/lshigami/Olingo/internal/dto"
	"github.com/lshigami/Olingo/internal/model"
)

func uintPtr(v uint) *uint { return &v }

// twoQuestionQuiz is the canonical fixture: Q1 with correct choice A, Q2 with
// correct choice C.
func twoQuestionQuiz() *model.Quiz {
	return &model.Quiz{
		ID:    1,
		Title: "Reading Practice 1",
		Questions: []model.Question{
			{
				ID: 10, QuizID: 1, Text: "Q1", Type: "multiple_choice", Position: 1,
				Choices: []model.Choice{
					{ID: 101, QuestionID: 10, Text: "A", IsCorrect: true, Position: 1},
					{ID: 102, QuestionID: 10, Text: "B", Position: 2},
				},
			},
			{
				ID: 20, QuizID: 1, Text: "Q2", Type: "multiple_choice", Position: 2,
				Choices: []model.Choice{
					{ID: 201, QuestionID: 20, Text: "C", IsCorrect: true, Position: 1},
					{ID: 202, QuestionID: 20, Text: "D", Position: 2},
				},
			},
		},
	}
}

func newGradingFixture(quiz *model.Quiz) (GradingService, *fakeAttemptRepo) {
	quizRepo := newFakeQuizRepo(quiz)
	attemptRepo := newFakeAttemptRepo()
	statsSvc := NewStatsService(quizRepo, &fakeQuestionRepo{questions: quiz.Questions}, attemptRepo, &fakeAnswerRepo{})
	return NewGradingService(quizRepo, attemptRepo, statsSvc), attemptRepo
}

func TestGradeSubmissionScoresByChoiceCorrectness(t *testing.T) {
	quiz := twoQuestionQuiz()
	graded := gradeSubmission(quiz.Questions, map[uint]*uint{
		10: uintPtr(101), // correct
		20: uintPtr(202), // wrong
	})

	if graded.score != 1 {
		t.Errorf("score = %d, want 1", graded.score)
	}
	if len(graded.answers) != 2 {
		t.Fatalf("answer count = %d, want one per quiz question", len(graded.answers))
	}
	if graded.answers[0].ChoiceID == nil || *graded.answers[0].ChoiceID != 101 || !graded.answers[0].IsCorrect {
		t.Errorf("Q1 answer = %+v, want choice 101 correct", graded.answers[0])
	}
	if graded.answers[1].ChoiceID == nil || *graded.answers[1].ChoiceID != 202 || graded.answers[1].IsCorrect {
		t.Errorf("Q2 answer = %+v, want choice 202 incorrect", graded.answers[1])
	}
	if len(graded.votedChoiceIDs) != 2 || graded.votedChoiceIDs[0] != 101 || graded.votedChoiceIDs[1] != 202 {
		t.Errorf("votedChoiceIDs = %v, want [101 202]", graded.votedChoiceIDs)
	}
}

func TestGradeSubmissionStaleChoiceIsUnanswered(t *testing.T) {
	quiz := twoQuestionQuiz()
	graded := gradeSubmission(quiz.Questions, map[uint]*uint{
		10: uintPtr(999), // no such choice
		20: uintPtr(201),
	})

	if len(graded.answers) != 2 {
		t.Fatalf("answer count = %d, want 2 even with a stale reference", len(graded.answers))
	}
	if graded.answers[0].ChoiceID != nil || graded.answers[0].IsCorrect {
		t.Errorf("stale reference should grade as unanswered, got %+v", graded.answers[0])
	}
	if graded.score != 1 {
		t.Errorf("score = %d, want 1", graded.score)
	}
	if len(graded.votedChoiceIDs) != 1 || graded.votedChoiceIDs[0] != 201 {
		t.Errorf("votedChoiceIDs = %v, stale reference must not vote", graded.votedChoiceIDs)
	}
}

func TestGradeSubmissionCrossQuestionChoiceIsUnanswered(t *testing.T) {
	quiz := twoQuestionQuiz()
	// Choice 201 exists but belongs to Q2, not Q1.
	graded := gradeSubmission(quiz.Questions, map[uint]*uint{10: uintPtr(201)})

	if graded.answers[0].ChoiceID != nil {
		t.Errorf("choice from another question must not resolve, got %+v", graded.answers[0])
	}
	if graded.score != 0 {
		t.Errorf("score = %d, want 0", graded.score)
	}
}

func TestGradeSubmissionUnansweredQuestionsStillRecorded(t *testing.T) {
	quiz := twoQuestionQuiz()
	graded := gradeSubmission(quiz.Questions, map[uint]*uint{10: uintPtr(101)})

	if len(graded.answers) != 2 {
		t.Fatalf("answer count = %d, want a record for the unanswered question too", len(graded.answers))
	}
	if graded.answers[1].ChoiceID != nil || graded.answers[1].IsCorrect {
		t.Errorf("unanswered question graded as %+v, want nil choice and incorrect", graded.answers[1])
	}
}

func TestScorePercentage(t *testing.T) {
	cases := []struct {
		score, total int
		want         float64
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 2, 50},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{3, 3, 100},
	}
	for _, tc := range cases {
		if got := scorePercentage(tc.score, tc.total); got != tc.want {
			t.Errorf("scorePercentage(%d, %d) = %v, want %v", tc.score, tc.total, got, tc.want)
		}
	}
}

func TestSubmitQuizPersistsGradedAttempt(t *testing.T) {
	quiz := twoQuestionQuiz()
	svc, attemptRepo := newGradingFixture(quiz)

	started := time.Now().Add(-90 * time.Second)
	detail, err := svc.SubmitQuiz(1, dto.QuizSubmissionDTO{
		UserID:    7,
		StartedAt: started,
		Answers: []dto.SubmittedAnswerDTO{
			{QuestionID: 10, ChoiceID: uintPtr(101)},
			{QuestionID: 20, ChoiceID: uintPtr(202)},
		},
	}, "203.0.113.9")
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	if detail.Score != 1 || detail.TotalQuestions != 2 || detail.Percentage != 50 {
		t.Errorf("detail = score %d / %d, %v%%, want 1/2 at 50%%", detail.Score, detail.TotalQuestions, detail.Percentage)
	}
	if detail.Grade != "F" || detail.Tier != model.TierPoor {
		t.Errorf("grade/tier = %s/%s, want F/poor for 50%%", detail.Grade, detail.Tier)
	}
	if len(detail.Answers) != 2 {
		t.Errorf("detail answers = %d, want 2", len(detail.Answers))
	}
	if detail.Rank == nil || *detail.Rank != 1 {
		t.Errorf("rank = %v, want 1 for the only attempt", detail.Rank)
	}
	if detail.Improvement != nil {
		t.Errorf("improvement = %v, want nil for a first attempt", *detail.Improvement)
	}
	if detail.TimeTakenSeconds < 89 || detail.TimeTakenSeconds > 91 {
		t.Errorf("time taken = %ds, want about 90s", detail.TimeTakenSeconds)
	}

	if len(attemptRepo.attempts) != 1 {
		t.Fatalf("ledger holds %d attempts, want 1", len(attemptRepo.attempts))
	}
	stored := attemptRepo.attempts[0]
	if stored.ClientIP != "203.0.113.9" {
		t.Errorf("stored client IP = %q", stored.ClientIP)
	}
	if attemptRepo.votes[101] != 1 || attemptRepo.votes[202] != 1 {
		t.Errorf("votes = %v, want exactly one for each selected choice", attemptRepo.votes)
	}
	if attemptRepo.votes[102] != 0 || attemptRepo.votes[201] != 0 {
		t.Errorf("votes = %v, unselected choices must not gain votes", attemptRepo.votes)
	}
}

func TestSubmitQuizFailedTransactionLeavesNoState(t *testing.T) {
	quiz := twoQuestionQuiz()
	svc, attemptRepo := newGradingFixture(quiz)
	attemptRepo.failCreate = true

	_, err := svc.SubmitQuiz(1, dto.QuizSubmissionDTO{
		UserID:    7,
		StartedAt: time.Now(),
		Answers:   []dto.SubmittedAnswerDTO{{QuestionID: 10, ChoiceID: uintPtr(101)}},
	}, "")
	if err == nil {
		t.Fatal("SubmitQuiz should fail when the ledger transaction fails")
	}
	if len(attemptRepo.attempts) != 0 {
		t.Errorf("ledger holds %d attempts after failed transaction, want 0", len(attemptRepo.attempts))
	}
	if len(attemptRepo.votes) != 0 {
		t.Errorf("votes recorded after failed transaction: %v", attemptRepo.votes)
	}
}

func TestSubmitQuizZeroQuestions(t *testing.T) {
	quiz := &model.Quiz{ID: 2, Title: "Empty"}
	svc, attemptRepo := newGradingFixture(quiz)

	detail, err := svc.SubmitQuiz(2, dto.QuizSubmissionDTO{UserID: 7, StartedAt: time.Now()}, "")
	if err != nil {
		t.Fatalf("SubmitQuiz on an empty quiz must not fail: %v", err)
	}
	if detail.Score != 0 || detail.Percentage != 0 || detail.Grade != "F" {
		t.Errorf("empty quiz graded as score %d, %v%%, %s; want 0, 0, F", detail.Score, detail.Percentage, detail.Grade)
	}
	if len(attemptRepo.attempts) != 1 || len(attemptRepo.attempts[0].Answers) != 0 {
		t.Errorf("empty quiz should still record an attempt with no answers")
	}
}

func TestSubmitQuizUnknownQuiz(t *testing.T) {
	svc, _ := newGradingFixture(twoQuestionQuiz())
	if _, err := svc.SubmitQuiz(99, dto.QuizSubmissionDTO{UserID: 7, StartedAt: time.Now()}, ""); err == nil {
		t.Fatal("SubmitQuiz should fail for an unknown quiz")
	}
}

func TestSubmitQuizSkipsForeignQuestions(t *testing.T) {
	quiz := twoQuestionQuiz()
	svc, attemptRepo := newGradingFixture(quiz)

	detail, err := svc.SubmitQuiz(1, dto.QuizSubmissionDTO{
		UserID:    7,
		StartedAt: time.Now(),
		Answers: []dto.SubmittedAnswerDTO{
			{QuestionID: 10, ChoiceID: uintPtr(101)},
			{QuestionID: 555, ChoiceID: uintPtr(101)}, // not part of this quiz
		},
	}, "")
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if detail.TotalQuestions != 2 || len(attemptRepo.attempts[0].Answers) != 2 {
		t.Errorf("foreign question must not add answer records")
	}
	if attemptRepo.votes[101] != 1 {
		t.Errorf("votes = %v, the foreign submission must not double-vote", attemptRepo.votes)
	}
}

func TestSubmitQuizResubmissionCreatesNewAttempt(t *testing.T) {
	quiz := twoQuestionQuiz()
	svc, attemptRepo := newGradingFixture(quiz)

	submission := dto.QuizSubmissionDTO{
		UserID:    7,
		StartedAt: time.Now().Add(-time.Minute),
		Answers:   []dto.SubmittedAnswerDTO{{QuestionID: 10, ChoiceID: uintPtr(101)}},
	}
	if _, err := svc.SubmitQuiz(1, submission, ""); err != nil {
		t.Fatalf("first SubmitQuiz: %v", err)
	}
	if _, err := svc.SubmitQuiz(1, submission, ""); err != nil {
		t.Fatalf("second SubmitQuiz: %v", err)
	}
	if len(attemptRepo.attempts) != 2 {
		t.Errorf("ledger holds %d attempts, resubmission must create a new one", len(attemptRepo.attempts))
	}
	if attemptRepo.votes[101] != 2 {
		t.Errorf("choice 101 votes = %d, want 2 after two submissions", attemptRepo.votes[101])
	}
}
