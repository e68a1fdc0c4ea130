package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
	apperrors "github.com/yourusername/langtest-api/internal/pkg/errors"
)

const (
	defaultHistoryPageSize = 20
	maxHistoryPageSize     = 100
)

// ResultService предоставляет методы для работы с результатами пользователей
type ResultService struct {
	resultRepo repository.ResultRepository
}

// NewResultService создает новый сервис результатов
func NewResultService(resultRepo repository.ResultRepository) *ResultService {
	return &ResultService{resultRepo: resultRepo}
}

// GetUserHistory возвращает страницу ответов пользователя, начиная с последних
func (s *ResultService) GetUserHistory(ctx context.Context, userID uint, page, pageSize int) ([]entity.TestResult, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultHistoryPageSize
	}
	if pageSize > maxHistoryPageSize {
		pageSize = maxHistoryPageSize
	}

	results, total, err := s.resultRepo.GetUserResults(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		log.Printf("[ResultService] Ошибка при получении истории пользователя #%d (page %d, size %d): %v", userID, page, pageSize, err)
		return nil, 0, err
	}
	return results, total, nil
}

// ExportResults возвращает строки для выгрузки результатов
func (s *ResultService) ExportResults(ctx context.Context, filters repository.ResultFilters) ([]repository.ResultExportRow, error) {
	if filters.DateFrom != nil && filters.DateTo != nil && filters.DateTo.Before(*filters.DateFrom) {
		return nil, fmt.Errorf("%w: date_to is before date_from", apperrors.ErrValidation)
	}
	return s.resultRepo.ListForExport(ctx, filters)
}
