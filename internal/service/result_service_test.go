package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
	apperrors "github.com/yourusername/langtest-api/internal/pkg/errors"
)

func TestGetUserHistory_Pagination(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name           string
		page, pageSize int
		limit, offset  int
	}{
		{"defaults", 0, 0, defaultHistoryPageSize, 0},
		{"third page", 3, 10, 10, 20},
		{"page size capped", 1, 1000, maxHistoryPageSize, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockResultRepository)
			repo.On("GetUserResults", ctx, uint(7), tc.limit, tc.offset).
				Return([]entity.TestResult{{ID: 1, UserID: 7}}, int64(41), nil)

			results, total, err := NewResultService(repo).GetUserHistory(ctx, 7, tc.page, tc.pageSize)

			require.NoError(t, err)
			assert.Len(t, results, 1)
			assert.Equal(t, int64(41), total)
			repo.AssertExpectations(t)
		})
	}
}

func TestExportResults(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	_, err := NewResultService(new(MockResultRepository)).ExportResults(ctx, repository.ResultFilters{DateFrom: &from, DateTo: &to})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	repo := new(MockResultRepository)
	filters := repository.ResultFilters{TestTypeID: uintPtr(2)}
	repo.On("ListForExport", ctx, filters).Return([]repository.ResultExportRow{{ResultID: 1, Username: "alice"}}, nil)

	rows, err := NewResultService(repo).ExportResults(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, "alice", rows[0].Username)
}
