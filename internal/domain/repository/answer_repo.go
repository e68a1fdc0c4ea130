package repository

import (
	"context"

	"github.com/yourusername/langtest-api/internal/domain/entity"
)

// AnswerRepository определяет методы для работы с общим пулом ответов
type AnswerRepository interface {
	Create(ctx context.Context, answer *entity.Answer) error
	GetByID(ctx context.Context, id uint) (*entity.Answer, error)
}
