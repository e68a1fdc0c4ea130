package testengine

import (
	"context"

	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
)

// DefaultQuestionsLimit — количество вопросов в тесте по умолчанию
const DefaultQuestionsLimit = 10

// Config содержит настройки выдачи и проверки тестов
type Config struct {
	// QuestionsLimit — сколько вопросов выдавать, если вызывающий не указал лимит
	QuestionsLimit int
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		QuestionsLimit: DefaultQuestionsLimit,
	}
}

// QuestionStore — хранилище вопросов, нужное селектору и проверке ответов.
// Реализуется repository.QuestionRepository.
type QuestionStore interface {
	FindPublishedIDs(ctx context.Context, testTypeID uint, excludeIDs []uint) ([]uint, error)
	GetWithAnswers(ctx context.Context, ids []uint) ([]entity.Question, error)
	FindExistingPairs(ctx context.Context, pairs []repository.QuestionAnswerPair) ([]repository.QuestionAnswerPair, error)
	GetRightAnswers(ctx context.Context, questionIDs []uint) ([]repository.QuestionAnswerPair, error)
}

// ResultLog — журнал ответов пользователей. Реализуется repository.ResultRepository.
type ResultLog interface {
	FindSeenQuestionIDs(ctx context.Context, userID uint) ([]uint, error)
	BulkInsert(ctx context.Context, results []entity.TestResult) error
}

// Dependencies содержит зависимости движка тестов
type Dependencies struct {
	Questions QuestionStore
	Results   ResultLog
	Config    *Config
}

// Submission — ответ пользователя на один вопрос. AnswerID == nil означает пропуск вопроса.
type Submission struct {
	QuestionID uint  `json:"question_id"`
	AnswerID   *uint `json:"answer_id,omitempty"`
}

// Skipped возвращает true, если пользователь пропустил вопрос
func (s Submission) Skipped() bool {
	return s.AnswerID == nil
}

// RightAnswer — правильный ответ на вопрос
type RightAnswer = repository.QuestionAnswerPair
