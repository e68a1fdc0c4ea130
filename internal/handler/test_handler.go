package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/langtest-api/internal/handler/dto"
	"github.com/yourusername/langtest-api/internal/middleware"
	apperrors "github.com/yourusername/langtest-api/internal/pkg/errors"
	"github.com/yourusername/langtest-api/internal/service"
)

// ContextTestTypeIDKey — ключ контекста с ID типа теста из URL
const ContextTestTypeIDKey = "testTypeID"

// TestHandler обрабатывает запросы прохождения тестов
type TestHandler struct {
	testTypeService *service.TestTypeService
	testService     *service.TestService
	resultService   *service.ResultService
}

// NewTestHandler создает новый обработчик тестов
func NewTestHandler(
	testTypeService *service.TestTypeService,
	testService *service.TestService,
	resultService *service.ResultService,
) *TestHandler {
	return &TestHandler{
		testTypeService: testTypeService,
		testService:     testService,
		resultService:   resultService,
	}
}

// ListTestTypes возвращает опубликованные типы тестов
func (h *TestHandler) ListTestTypes(c *gin.Context) {
	testTypes, err := h.testTypeService.ListPublished(c.Request.Context())
	if err != nil {
		handleError(c, "TestHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTestTypeResponses(testTypes))
}

// GetTest возвращает тип теста с набором вопросов для текущего пользователя
func (h *TestHandler) GetTest(c *gin.Context) {
	testTypeID := c.MustGet(ContextTestTypeIDKey).(uint)

	var userID *uint
	if id, ok := middleware.UserIDFromContext(c); ok {
		userID = &id
	}

	test, err := h.testService.GetTest(c.Request.Context(), testTypeID, userID)
	if err != nil {
		handleError(c, "TestHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTestResponse(test.TestType, test.Questions))
}

// SubmitResult проверяет ответы и возвращает правильные.
// Ответы сохраняются, только если передан user_id аутентифицированного пользователя.
func (h *TestHandler) SubmitResult(c *gin.Context) {
	var req dto.SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// Сохраняем только при явном user_id, совпадающем с токеном
	authUserID, authenticated := middleware.UserIDFromContext(c)
	if req.UserID != nil && (!authenticated || *req.UserID != authUserID) {
		handleError(c, "TestHandler", fmt.Errorf("%w: user_id does not match the authenticated user", apperrors.ErrForbidden))
		return
	}

	rightAnswers, err := h.testService.SubmitAnswers(c.Request.Context(), req.ToSubmissions(), req.UserID)
	if err != nil {
		handleError(c, "TestHandler", err)
		return
	}
	c.JSON(http.StatusCreated, dto.RightAnswersResponse{RightAnswers: rightAnswers})
}

// GetHistory возвращает историю ответов текущего пользователя
func (h *TestHandler) GetHistory(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		handleError(c, "TestHandler", apperrors.ErrUnauthorized)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	results, total, err := h.resultService.GetUserHistory(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		handleError(c, "TestHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedHistoryResponse(results, total, page, pageSize))
}
