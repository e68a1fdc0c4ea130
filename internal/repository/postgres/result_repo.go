package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// FindSeenQuestionIDs возвращает различные ID вопросов из истории пользователя
func (r *ResultRepo) FindSeenQuestionIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&entity.TestResult{}).
		Where("user_id = ?", userID).
		Distinct("question_id").
		Pluck("question_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load answered questions of user %d: %w", userID, err)
	}
	return ids, nil
}

// BulkInsert сохраняет результаты одним INSERT
func (r *ResultRepo) BulkInsert(ctx context.Context, results []entity.TestResult) error {
	if len(results) == 0 {
		return nil
	}
	now := time.Now()
	for i := range results {
		if results[i].SolutionDate.IsZero() {
			results[i].SolutionDate = now
		}
	}
	if err := r.db.WithContext(ctx).Create(&results).Error; err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}
	return nil
}

// GetUserResults возвращает результаты пользователя (новые первыми) и их общее количество
func (r *ResultRepo) GetUserResults(ctx context.Context, userID uint, limit, offset int) ([]entity.TestResult, int64, error) {
	var results []entity.TestResult
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&entity.TestResult{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Where("user_id = ?", userID).
		Order("solution_date DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// ListForExport возвращает результаты с текстами вопросов и ответов для выгрузки
func (r *ResultRepo) ListForExport(ctx context.Context, filters repository.ResultFilters) ([]repository.ResultExportRow, error) {
	query := r.db.WithContext(ctx).
		Table("test_results AS tr").
		Select(`tr.id AS result_id, tr.user_id, u.username, COALESCE(tt.name, '') AS test_type_name,
			q.text AS question, a.text AS answer, COALESCE(qa.is_right_answer, false) AS is_right_answer,
			tr.solution_date`).
		Joins("JOIN users u ON u.id = tr.user_id").
		Joins("JOIN questions q ON q.id = tr.question_id").
		Joins("JOIN answers a ON a.id = tr.answer_id").
		Joins("LEFT JOIN test_types tt ON tt.id = q.test_type_id").
		Joins("LEFT JOIN question_answers qa ON qa.question_id = tr.question_id AND qa.answer_id = tr.answer_id")

	if filters.UserID != nil {
		query = query.Where("tr.user_id = ?", *filters.UserID)
	}
	if filters.TestTypeID != nil {
		query = query.Where("q.test_type_id = ?", *filters.TestTypeID)
	}
	if filters.DateFrom != nil {
		query = query.Where("tr.solution_date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("tr.solution_date <= ?", *filters.DateTo)
	}

	var rows []repository.ResultExportRow
	if err := query.Order("tr.id").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load results for export: %w", err)
	}
	return rows, nil
}
