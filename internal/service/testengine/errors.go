package testengine

import (
	"fmt"

	apperrors "github.com/yourusername/langtest-api/internal/pkg/errors"
)

// Ошибки проверки ответов. Обе оборачивают apperrors.ErrValidation.
var (
	ErrDuplicateQuestion      = fmt.Errorf("%w: got duplicate questions", apperrors.ErrValidation)
	ErrInvalidAnswerReference = fmt.Errorf("%w: got invalid question answer id", apperrors.ErrValidation)
)
