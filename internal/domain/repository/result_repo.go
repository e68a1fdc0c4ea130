package repository

import (
	"context"
	"time"

	"github.com/yourusername/langtest-api/internal/domain/entity"
)

// ResultExportRow — строка выгрузки результатов с текстами вопросов и ответов
type ResultExportRow struct {
	ResultID      uint
	UserID        uint
	Username      string
	TestTypeName  string
	Question      string
	Answer        string
	IsRightAnswer bool
	SolutionDate  time.Time
}

// ResultFilters определяет фильтры выгрузки результатов
type ResultFilters struct {
	UserID     *uint
	TestTypeID *uint
	DateFrom   *time.Time
	DateTo     *time.Time
}

// ResultRepository определяет методы для работы с журналом результатов
type ResultRepository interface {
	// FindSeenQuestionIDs возвращает различные ID вопросов, на которые пользователь уже отвечал
	FindSeenQuestionIDs(ctx context.Context, userID uint) ([]uint, error)
	// BulkInsert добавляет все записи одной вставкой: либо все, либо ни одной
	BulkInsert(ctx context.Context, results []entity.TestResult) error
	GetUserResults(ctx context.Context, userID uint, limit, offset int) ([]entity.TestResult, int64, error)
	ListForExport(ctx context.Context, filters ResultFilters) ([]ResultExportRow, error)
}
