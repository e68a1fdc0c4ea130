package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/langtest-api/internal/domain/entity"
)

// TestTypeRepo реализует repository.TestTypeRepository
type TestTypeRepo struct {
	db *gorm.DB
}

// NewTestTypeRepo создает новый репозиторий типов тестов
func NewTestTypeRepo(db *gorm.DB) *TestTypeRepo {
	return &TestTypeRepo{db: db}
}

// Create создает новый тип теста
func (r *TestTypeRepo) Create(ctx context.Context, testType *entity.TestType) error {
	return wrapWriteError(r.db.WithContext(ctx).Create(testType).Error, "test type")
}

// GetByID возвращает тип теста по ID независимо от публикации
func (r *TestTypeRepo) GetByID(ctx context.Context, id uint) (*entity.TestType, error) {
	var testType entity.TestType
	if err := r.db.WithContext(ctx).First(&testType, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &testType, nil
}

// GetByName возвращает тип теста по точному имени
func (r *TestTypeRepo) GetByName(ctx context.Context, name string) (*entity.TestType, error) {
	var testType entity.TestType
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&testType).Error; err != nil {
		return nil, notFound(err)
	}
	return &testType, nil
}

// GetPublishedByID возвращает опубликованный тип теста
func (r *TestTypeRepo) GetPublishedByID(ctx context.Context, id uint) (*entity.TestType, error) {
	var testType entity.TestType
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_published = ?", id, true).
		First(&testType).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &testType, nil
}

// ListPublished возвращает опубликованные типы тестов, упорядоченные по ID
func (r *TestTypeRepo) ListPublished(ctx context.Context) ([]entity.TestType, error) {
	var testTypes []entity.TestType
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("id").
		Find(&testTypes).Error
	return testTypes, err
}
