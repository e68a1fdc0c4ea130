package repository

import (
	"context"

	"github.com/yourusername/langtest-api/internal/domain/entity"
)

// TestTypeRepository определяет методы для работы с типами тестов
type TestTypeRepository interface {
	Create(ctx context.Context, testType *entity.TestType) error
	GetByID(ctx context.Context, id uint) (*entity.TestType, error)
	GetByName(ctx context.Context, name string) (*entity.TestType, error)
	// GetPublishedByID возвращает apperrors.ErrNotFound и для несуществующего, и для неопубликованного типа
	GetPublishedByID(ctx context.Context, id uint) (*entity.TestType, error)
	ListPublished(ctx context.Context) ([]entity.TestType, error)
}
