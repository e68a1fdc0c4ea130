package handler

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
)

type MockTestTypeRepository struct {
	mock.Mock
}

func (m *MockTestTypeRepository) Create(ctx context.Context, testType *entity.TestType) error {
	return m.Called(ctx, testType).Error(0)
}

func (m *MockTestTypeRepository) GetByID(ctx context.Context, id uint) (*entity.TestType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TestType), args.Error(1)
}

func (m *MockTestTypeRepository) GetByName(ctx context.Context, name string) (*entity.TestType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TestType), args.Error(1)
}

func (m *MockTestTypeRepository) GetPublishedByID(ctx context.Context, id uint) (*entity.TestType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TestType), args.Error(1)
}

func (m *MockTestTypeRepository) ListPublished(ctx context.Context) ([]entity.TestType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TestType), args.Error(1)
}

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) CreateWithAnswers(ctx context.Context, question *entity.Question, answers []repository.NewAnswer) error {
	return m.Called(ctx, question, answers).Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindPublishedIDs(ctx context.Context, testTypeID uint, excludeIDs []uint) ([]uint, error) {
	args := m.Called(ctx, testTypeID, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockQuestionRepository) GetWithAnswers(ctx context.Context, ids []uint) ([]entity.Question, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindExistingPairs(ctx context.Context, pairs []repository.QuestionAnswerPair) ([]repository.QuestionAnswerPair, error) {
	args := m.Called(ctx, pairs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuestionAnswerPair), args.Error(1)
}

func (m *MockQuestionRepository) GetRightAnswers(ctx context.Context, questionIDs []uint) ([]repository.QuestionAnswerPair, error) {
	args := m.Called(ctx, questionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuestionAnswerPair), args.Error(1)
}

type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Create(ctx context.Context, answer *entity.Answer) error {
	return m.Called(ctx, answer).Error(0)
}

func (m *MockAnswerRepository) GetByID(ctx context.Context, id uint) (*entity.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Answer), args.Error(1)
}

type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) FindSeenQuestionIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockResultRepository) BulkInsert(ctx context.Context, results []entity.TestResult) error {
	return m.Called(ctx, results).Error(0)
}

func (m *MockResultRepository) GetUserResults(ctx context.Context, userID uint, limit, offset int) ([]entity.TestResult, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.TestResult), args.Get(1).(int64), args.Error(2)
}

func (m *MockResultRepository) ListForExport(ctx context.Context, filters repository.ResultFilters) ([]repository.ResultExportRow, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ResultExportRow), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
