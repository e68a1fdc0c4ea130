package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
	apperrors "github.com/yourusername/langtest-api/internal/pkg/errors"
)

const answerTextMaxLength = 64

// AnswerService управляет общим пулом ответов
type AnswerService struct {
	answerRepo repository.AnswerRepository
}

// NewAnswerService создает новый сервис ответов
func NewAnswerService(answerRepo repository.AnswerRepository) *AnswerService {
	return &AnswerService{answerRepo: answerRepo}
}

// CreateAnswer добавляет ответ в пул. Повторный текст даёт apperrors.ErrConflict.
func (s *AnswerService) CreateAnswer(ctx context.Context, text string) (*entity.Answer, error) {
	text, err := normalizeAnswerText(text)
	if err != nil {
		return nil, err
	}

	answer := &entity.Answer{Text: text}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func normalizeAnswerText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: answer text is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(text) > answerTextMaxLength {
		return "", fmt.Errorf("%w: answer must be at most %d characters", apperrors.ErrValidation, answerTextMaxLength)
	}
	return text, nil
}
