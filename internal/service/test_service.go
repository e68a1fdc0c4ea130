package service

import (
	"context"

	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
	"github.com/yourusername/langtest-api/internal/service/testengine"
)

// TestWithQuestions — тип теста с выбранными для пользователя вопросами
type TestWithQuestions struct {
	TestType  *entity.TestType
	Questions []entity.Question
}

// TestService выдаёт тесты пользователям и проверяет ответы
type TestService struct {
	testTypeRepo repository.TestTypeRepository
	selector     *testengine.QuestionSelector
	grader       *testengine.Grader
}

// NewTestService создает новый сервис прохождения тестов
func NewTestService(testTypeRepo repository.TestTypeRepository, deps *testengine.Dependencies) *TestService {
	return &TestService{
		testTypeRepo: testTypeRepo,
		selector:     testengine.NewQuestionSelector(deps),
		grader:       testengine.NewGrader(deps),
	}
}

// GetTest возвращает опубликованный тип теста и набор вопросов для пользователя.
// userID == nil — анонимный пользователь.
func (s *TestService) GetTest(ctx context.Context, testTypeID uint, userID *uint) (*TestWithQuestions, error) {
	testType, err := s.testTypeRepo.GetPublishedByID(ctx, testTypeID)
	if err != nil {
		return nil, err
	}

	questions, err := s.selector.SelectQuestions(ctx, testType.ID, userID, 0)
	if err != nil {
		return nil, err
	}

	return &TestWithQuestions{TestType: testType, Questions: questions}, nil
}

// SubmitAnswers проверяет ответы, сохраняет их для известного пользователя
// и возвращает правильные ответы
func (s *TestService) SubmitAnswers(ctx context.Context, submission []testengine.Submission, userID *uint) ([]testengine.RightAnswer, error) {
	return s.grader.Grade(ctx, submission, userID)
}
