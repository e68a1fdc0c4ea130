package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
	apperrors "github.com/yourusername/langtest-api/internal/pkg/errors"
)

// CreateQuestionInput содержит данные для создания вопроса
type CreateQuestionInput struct {
	Text        string
	TestTypeID  *uint
	IsPublished bool
	Answers     []repository.NewAnswer
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	testTypeRepo repository.TestTypeRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, testTypeRepo repository.TestTypeRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		testTypeRepo: testTypeRepo,
	}
}

// CreateQuestion создает вопрос ровно с четырьмя вариантами ответа, один из которых правильный.
// Ответы с уже существующим текстом переиспользуются.
func (s *QuestionService) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*entity.Question, error) {
	text := strings.TrimSpace(input.Text)
	if err := entity.ValidateQuestionText(text); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	answers, err := normalizeQuestionAnswers(input.Answers)
	if err != nil {
		return nil, err
	}

	if input.TestTypeID != nil {
		if _, err := s.testTypeRepo.GetByID(ctx, *input.TestTypeID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: test type %d does not exist", apperrors.ErrValidation, *input.TestTypeID)
			}
			return nil, err
		}
	}

	question := &entity.Question{
		Text:        text,
		IsPublished: input.IsPublished,
		TestTypeID:  input.TestTypeID,
	}
	if err := s.questionRepo.CreateWithAnswers(ctx, question, answers); err != nil {
		return nil, err
	}

	log.Printf("[QuestionService] Создан вопрос #%d с %d ответами", question.ID, len(answers))
	return question, nil
}

// GetQuestion возвращает вопрос по ID
func (s *QuestionService) GetQuestion(ctx context.Context, id uint) (*entity.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// normalizeQuestionAnswers проверяет набор ответов: ровно QuestionAnswersCount
// различных непустых текстов и ровно один правильный.
func normalizeQuestionAnswers(answers []repository.NewAnswer) ([]repository.NewAnswer, error) {
	if len(answers) != entity.QuestionAnswersCount {
		return nil, fmt.Errorf("%w: question must have exactly %d answers, got %d",
			apperrors.ErrValidation, entity.QuestionAnswersCount, len(answers))
	}

	normalized := make([]repository.NewAnswer, 0, len(answers))
	texts := make(map[string]struct{}, len(answers))
	rightCount := 0
	for _, a := range answers {
		text, err := normalizeAnswerText(a.Text)
		if err != nil {
			return nil, err
		}
		if _, dup := texts[text]; dup {
			return nil, fmt.Errorf("%w: duplicate answer %q", apperrors.ErrValidation, text)
		}
		texts[text] = struct{}{}
		if a.IsRightAnswer {
			rightCount++
		}
		normalized = append(normalized, repository.NewAnswer{Text: text, IsRightAnswer: a.IsRightAnswer})
	}

	if rightCount != 1 {
		return nil, fmt.Errorf("%w: question must have exactly one right answer, got %d", apperrors.ErrValidation, rightCount)
	}
	return normalized, nil
}
