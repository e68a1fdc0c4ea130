package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
	apperrors "github.com/yourusername/langtest-api/internal/pkg/errors"
)

const (
	publishedTestTypesCacheKey = "test_types:published"
	testTypeNameMaxLength      = 128
)

// TestTypeService предоставляет методы для работы с типами тестов
type TestTypeService struct {
	testTypeRepo repository.TestTypeRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
}

// NewTestTypeService создает новый сервис типов тестов.
// cacheRepo может быть nil: тогда список всегда читается из БД.
func NewTestTypeService(testTypeRepo repository.TestTypeRepository, cacheRepo repository.CacheRepository, cacheTTL time.Duration) *TestTypeService {
	return &TestTypeService{
		testTypeRepo: testTypeRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
	}
}

// CreateTestType создает новый тип теста и сбрасывает кеш списка
func (s *TestTypeService) CreateTestType(ctx context.Context, name string, isPublished bool) (*entity.TestType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: test type name is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(name) > testTypeNameMaxLength {
		return nil, fmt.Errorf("%w: test type name must be at most %d characters", apperrors.ErrValidation, testTypeNameMaxLength)
	}

	testType := &entity.TestType{Name: name, IsPublished: isPublished}
	if err := s.testTypeRepo.Create(ctx, testType); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	log.Printf("[TestTypeService] Создан тип теста #%d %q (published=%t)", testType.ID, testType.Name, testType.IsPublished)
	return testType, nil
}

// EnsureTestType возвращает тип теста с указанным именем, создавая его при отсутствии.
// Второе значение равно true, если тип был создан.
func (s *TestTypeService) EnsureTestType(ctx context.Context, name string, isPublished bool) (*entity.TestType, bool, error) {
	existing, err := s.testTypeRepo.GetByName(ctx, strings.TrimSpace(name))
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, err
	}
	created, err := s.CreateTestType(ctx, name, isPublished)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// ListPublished возвращает опубликованные типы тестов, используя кеш
func (s *TestTypeService) ListPublished(ctx context.Context) ([]entity.TestType, error) {
	if s.cacheRepo != nil {
		var cached []entity.TestType
		err := s.cacheRepo.GetJSON(ctx, publishedTestTypesCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[TestTypeService] WARNING: не удалось прочитать кеш типов тестов: %v", err)
		}
	}

	testTypes, err := s.testTypeRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(ctx, publishedTestTypesCacheKey, testTypes, s.cacheTTL); err != nil {
			log.Printf("[TestTypeService] WARNING: не удалось записать кеш типов тестов: %v", err)
		}
	}
	return testTypes, nil
}

func (s *TestTypeService) invalidateList(ctx context.Context) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Delete(ctx, publishedTestTypesCacheKey); err != nil {
		log.Printf("[TestTypeService] WARNING: не удалось сбросить кеш типов тестов: %v", err)
	}
}
