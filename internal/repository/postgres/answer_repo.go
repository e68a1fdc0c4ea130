package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/langtest-api/internal/domain/entity"
)

// AnswerRepo реализует repository.AnswerRepository
type AnswerRepo struct {
	db *gorm.DB
}

// NewAnswerRepo создает новый репозиторий ответов
func NewAnswerRepo(db *gorm.DB) *AnswerRepo {
	return &AnswerRepo{db: db}
}

// Create добавляет ответ в общий пул
func (r *AnswerRepo) Create(ctx context.Context, answer *entity.Answer) error {
	return wrapWriteError(r.db.WithContext(ctx).Create(answer).Error, "answer")
}

// GetByID возвращает ответ по ID
func (r *AnswerRepo) GetByID(ctx context.Context, id uint) (*entity.Answer, error) {
	var answer entity.Answer
	if err := r.db.WithContext(ctx).First(&answer, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &answer, nil
}
