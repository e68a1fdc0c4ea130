package testengine

import (
	"context"
	"sort"

	"github.com/stretchr/testify/mock"
	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
)

func uintPtr(v uint) *uint { return &v }

// MockQuestionStore реализует QuestionStore
type MockQuestionStore struct {
	mock.Mock
}

func (m *MockQuestionStore) FindPublishedIDs(ctx context.Context, testTypeID uint, excludeIDs []uint) ([]uint, error) {
	args := m.Called(ctx, testTypeID, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockQuestionStore) GetWithAnswers(ctx context.Context, ids []uint) ([]entity.Question, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionStore) FindExistingPairs(ctx context.Context, pairs []repository.QuestionAnswerPair) ([]repository.QuestionAnswerPair, error) {
	args := m.Called(ctx, pairs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuestionAnswerPair), args.Error(1)
}

func (m *MockQuestionStore) GetRightAnswers(ctx context.Context, questionIDs []uint) ([]repository.QuestionAnswerPair, error) {
	args := m.Called(ctx, questionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuestionAnswerPair), args.Error(1)
}

// MockResultLog реализует ResultLog
type MockResultLog struct {
	mock.Mock
}

func (m *MockResultLog) FindSeenQuestionIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockResultLog) BulkInsert(ctx context.Context, results []entity.TestResult) error {
	args := m.Called(ctx, results)
	return args.Error(0)
}

// ============================================================================
// memoryStore — хранилище в памяти для проверки свойств на множестве входов
// ============================================================================

type memoryQuestion struct {
	testTypeID uint
	published  bool
	answers    []uint
	right      uint
}

type memoryStore struct {
	questions map[uint]memoryQuestion
	results   []entity.TestResult
	inserts   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{questions: make(map[uint]memoryQuestion)}
}

// addQuestion добавляет вопрос с ответами id*10+1..id*10+4, правильный — id*10+1
func (s *memoryStore) addQuestion(id, testTypeID uint, published bool) {
	base := id * 10
	s.questions[id] = memoryQuestion{
		testTypeID: testTypeID,
		published:  published,
		answers:    []uint{base + 1, base + 2, base + 3, base + 4},
		right:      base + 1,
	}
}

func (s *memoryStore) FindPublishedIDs(_ context.Context, testTypeID uint, excludeIDs []uint) ([]uint, error) {
	excluded := make(map[uint]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}
	ids := []uint{}
	for id, q := range s.questions {
		if q.testTypeID != testTypeID || !q.published {
			continue
		}
		if _, ok := excluded[id]; ok {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *memoryStore) GetWithAnswers(_ context.Context, ids []uint) ([]entity.Question, error) {
	out := []entity.Question{}
	for _, id := range ids {
		q, ok := s.questions[id]
		if !ok {
			continue
		}
		question := entity.Question{ID: id, IsPublished: q.published, TestTypeID: uintPtr(q.testTypeID)}
		for _, a := range q.answers {
			question.Answers = append(question.Answers, entity.Answer{ID: a})
		}
		out = append(out, question)
	}
	return out, nil
}

func (s *memoryStore) FindExistingPairs(_ context.Context, pairs []repository.QuestionAnswerPair) ([]repository.QuestionAnswerPair, error) {
	out := []repository.QuestionAnswerPair{}
	for _, p := range pairs {
		q, ok := s.questions[p.QuestionID]
		if !ok {
			continue
		}
		for _, a := range q.answers {
			if a == p.AnswerID {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (s *memoryStore) GetRightAnswers(_ context.Context, questionIDs []uint) ([]repository.QuestionAnswerPair, error) {
	ids := append([]uint(nil), questionIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := []repository.QuestionAnswerPair{}
	for _, id := range ids {
		if q, ok := s.questions[id]; ok {
			out = append(out, repository.QuestionAnswerPair{QuestionID: id, AnswerID: q.right})
		}
	}
	return out, nil
}

func (s *memoryStore) FindSeenQuestionIDs(_ context.Context, userID uint) ([]uint, error) {
	seen := map[uint]struct{}{}
	ids := []uint{}
	for _, r := range s.results {
		if r.UserID != userID {
			continue
		}
		if _, ok := seen[r.QuestionID]; ok {
			continue
		}
		seen[r.QuestionID] = struct{}{}
		ids = append(ids, r.QuestionID)
	}
	return ids, nil
}

func (s *memoryStore) BulkInsert(_ context.Context, results []entity.TestResult) error {
	s.inserts++
	s.results = append(s.results, results...)
	return nil
}

func (s *memoryStore) deps() *Dependencies {
	return &Dependencies{Questions: s, Results: s, Config: DefaultConfig()}
}
