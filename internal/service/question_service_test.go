package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
	apperrors "github.com/yourusername/langtest-api/internal/pkg/errors"
)

func validAnswers() []repository.NewAnswer {
	return []repository.NewAnswer{
		{Text: "am", IsRightAnswer: true},
		{Text: "is"},
		{Text: "are"},
		{Text: "be"},
	}
}

func TestCreateQuestion_Success(t *testing.T) {
	ctx := context.Background()
	questionRepo := new(MockQuestionRepository)
	testTypeRepo := new(MockTestTypeRepository)

	testTypeRepo.On("GetByID", ctx, uint(2)).Return(&entity.TestType{ID: 2, Name: "A1"}, nil)
	questionRepo.On("CreateWithAnswers", ctx,
		mock.MatchedBy(func(q *entity.Question) bool {
			return q.Text == "I ___ a student." && q.TestTypeID != nil && *q.TestTypeID == 2 && q.IsPublished
		}),
		[]repository.NewAnswer{{Text: "am", IsRightAnswer: true}, {Text: "is"}, {Text: "are"}, {Text: "be"}},
	).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Question).ID = 10
	}).Return(nil)

	answers := validAnswers()
	answers[1].Text = "  is  "
	svc := NewQuestionService(questionRepo, testTypeRepo)
	question, err := svc.CreateQuestion(ctx, CreateQuestionInput{
		Text:        " I ___ a student. ",
		TestTypeID:  uintPtr(2),
		IsPublished: true,
		Answers:     answers,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(10), question.ID)
	questionRepo.AssertExpectations(t)
	testTypeRepo.AssertExpectations(t)
}

func TestCreateQuestion_WithoutTestType(t *testing.T) {
	ctx := context.Background()
	questionRepo := new(MockQuestionRepository)
	testTypeRepo := new(MockTestTypeRepository)
	questionRepo.On("CreateWithAnswers", ctx, mock.Anything, mock.Anything).Return(nil)

	_, err := NewQuestionService(questionRepo, testTypeRepo).CreateQuestion(ctx, CreateQuestionInput{
		Text:    "She ___ happy.",
		Answers: validAnswers(),
	})

	require.NoError(t, err)
	testTypeRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCreateQuestion_Validation(t *testing.T) {
	ctx := context.Background()

	twoRight := validAnswers()
	twoRight[1].IsRightAnswer = true
	noRight := validAnswers()
	noRight[0].IsRightAnswer = false
	duplicate := validAnswers()
	duplicate[3].Text = "is"
	blank := validAnswers()
	blank[2].Text = " "

	cases := []struct {
		name    string
		text    string
		answers []repository.NewAnswer
	}{
		{"short text", "a ___ b", validAnswers()},
		{"no blank", "I am a student.", validAnswers()},
		{"two blanks", "I ___ a ___ student.", validAnswers()},
		{"three answers", "I ___ a student.", validAnswers()[:3]},
		{"five answers", "I ___ a student.", append(validAnswers(), repository.NewAnswer{Text: "was"})},
		{"two right answers", "I ___ a student.", twoRight},
		{"no right answer", "I ___ a student.", noRight},
		{"duplicate answer", "I ___ a student.", duplicate},
		{"blank answer", "I ___ a student.", blank},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			questionRepo := new(MockQuestionRepository)
			svc := NewQuestionService(questionRepo, new(MockTestTypeRepository))

			_, err := svc.CreateQuestion(ctx, CreateQuestionInput{Text: tc.text, Answers: tc.answers})

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			questionRepo.AssertNotCalled(t, "CreateWithAnswers", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateQuestion_UnknownTestType(t *testing.T) {
	ctx := context.Background()
	testTypeRepo := new(MockTestTypeRepository)
	testTypeRepo.On("GetByID", ctx, uint(99)).Return(nil, apperrors.ErrNotFound)

	_, err := NewQuestionService(new(MockQuestionRepository), testTypeRepo).CreateQuestion(ctx, CreateQuestionInput{
		Text:       "I ___ a student.",
		TestTypeID: uintPtr(99),
		Answers:    validAnswers(),
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		repo := new(MockAnswerRepository)
		repo.On("Create", ctx, &entity.Answer{Text: "were"}).Return(nil)

		answer, err := NewAnswerService(repo).CreateAnswer(ctx, " were ")

		require.NoError(t, err)
		assert.Equal(t, "were", answer.Text)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := NewAnswerService(new(MockAnswerRepository)).CreateAnswer(ctx, strings.Repeat("a", 65))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := new(MockAnswerRepository)
		repo.On("Create", ctx, mock.Anything).Return(apperrors.ErrConflict)

		_, err := NewAnswerService(repo).CreateAnswer(ctx, "were")
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}
