package testengine

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/yourusername/langtest-api/internal/domain/entity"
)

// QuestionSelector выбирает случайный набор опубликованных вопросов типа теста,
// отдавая предпочтение вопросам, на которые пользователь ещё не отвечал.
type QuestionSelector struct {
	deps *Dependencies
	intN func(int) int
}

// NewQuestionSelector создаёт новый селектор
func NewQuestionSelector(deps *Dependencies) *QuestionSelector {
	return &QuestionSelector{
		deps: deps,
		intN: rand.IntN,
	}
}

// SelectQuestions возвращает до limit различных вопросов (с вариантами ответов).
// userID == nil — анонимный пользователь без истории. limit <= 0 — лимит из конфигурации.
//
// Если непройденных вопросов меньше limit, исключение по истории отбрасывается
// целиком и выборка идёт из всех опубликованных вопросов типа.
// Порядок результата случайный, вызывающий не должен на него полагаться.
func (s *QuestionSelector) SelectQuestions(ctx context.Context, testTypeID uint, userID *uint, limit int) ([]entity.Question, error) {
	if limit <= 0 {
		limit = s.defaultLimit()
	}

	var seenIDs []uint
	if userID != nil {
		var err error
		seenIDs, err = s.deps.Results.FindSeenQuestionIDs(ctx, *userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user history: %w", err)
		}
	}

	ids, err := s.deps.Questions.FindPublishedIDs(ctx, testTypeID, seenIDs)
	if err != nil {
		return nil, err
	}

	if len(ids) < limit && len(seenIDs) > 0 {
		log.Printf("[QuestionSelector] Test type #%d: only %d unseen questions for user #%d (limit %d), using full pool",
			testTypeID, len(ids), *userID, limit)
		ids, err = s.deps.Questions.FindPublishedIDs(ctx, testTypeID, nil)
		if err != nil {
			return nil, err
		}
	}

	sampled := sampleIDs(ids, limit, s.intN)
	if len(sampled) == 0 {
		return []entity.Question{}, nil
	}

	questions, err := s.deps.Questions.GetWithAnswers(ctx, sampled)
	if err != nil {
		return nil, err
	}
	return orderBySample(questions, sampled), nil
}

func (s *QuestionSelector) defaultLimit() int {
	if s.deps.Config != nil && s.deps.Config.QuestionsLimit > 0 {
		return s.deps.Config.QuestionsLimit
	}
	return DefaultQuestionsLimit
}

// orderBySample раскладывает загруженные вопросы в порядке выборки
func orderBySample(questions []entity.Question, sampled []uint) []entity.Question {
	byID := make(map[uint]entity.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]entity.Question, 0, len(questions))
	for _, id := range sampled {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered
}
