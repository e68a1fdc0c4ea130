package repository

import (
	"context"

	"github.com/yourusername/langtest-api/internal/domain/entity"
)

// QuestionAnswerPair — пара (вопрос, ответ)
type QuestionAnswerPair struct {
	QuestionID uint `json:"question_id"`
	AnswerID   uint `json:"answer_id"`
}

// NewAnswer описывает вариант ответа при создании вопроса
type NewAnswer struct {
	Text          string
	IsRightAnswer bool
}

// QuestionRepository определяет методы для работы с вопросами и связями вопрос-ответ
type QuestionRepository interface {
	// CreateWithAnswers в одной транзакции создаёт вопрос, недостающие ответы
	// (существующие переиспользуются по тексту) и связи question_answers.
	CreateWithAnswers(ctx context.Context, question *entity.Question, answers []NewAnswer) error
	GetByID(ctx context.Context, id uint) (*entity.Question, error)

	// FindPublishedIDs возвращает ID опубликованных вопросов типа теста, кроме excludeIDs
	FindPublishedIDs(ctx context.Context, testTypeID uint, excludeIDs []uint) ([]uint, error)
	// GetWithAnswers загружает вопросы по ID вместе со всеми вариантами ответов
	GetWithAnswers(ctx context.Context, ids []uint) ([]entity.Question, error)
	// FindExistingPairs возвращает те из переданных пар, которые существуют в question_answers
	FindExistingPairs(ctx context.Context, pairs []QuestionAnswerPair) ([]QuestionAnswerPair, error)
	// GetRightAnswers возвращает правильный ответ для каждого существующего вопроса из списка
	GetRightAnswers(ctx context.Context, questionIDs []uint) ([]QuestionAnswerPair, error)
}
