package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/langtest-api/internal/domain/repository"
	"github.com/yourusername/langtest-api/internal/handler/dto"
	apperrors "github.com/yourusername/langtest-api/internal/pkg/errors"
	"github.com/yourusername/langtest-api/internal/service"
)

// ContextQuestionIDKey — ключ контекста с ID вопроса из URL
const ContextQuestionIDKey = "questionID"

// AdminHandler обрабатывает административные запросы: наполнение базы тестов и выгрузку результатов
type AdminHandler struct {
	testTypeService *service.TestTypeService
	questionService *service.QuestionService
	answerService   *service.AnswerService
	resultService   *service.ResultService
}

// NewAdminHandler создает новый административный обработчик
func NewAdminHandler(
	testTypeService *service.TestTypeService,
	questionService *service.QuestionService,
	answerService *service.AnswerService,
	resultService *service.ResultService,
) *AdminHandler {
	return &AdminHandler{
		testTypeService: testTypeService,
		questionService: questionService,
		answerService:   answerService,
		resultService:   resultService,
	}
}

// CreateTestType создает тип теста
func (h *AdminHandler) CreateTestType(c *gin.Context) {
	var req dto.CreateTestTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	isPublished := req.IsPublished == nil || *req.IsPublished
	testType, err := h.testTypeService.CreateTestType(c.Request.Context(), req.Name, isPublished)
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": testType.ID, "name": testType.Name, "is_published": testType.IsPublished})
}

// CreateAnswer добавляет ответ в общий пул
func (h *AdminHandler) CreateAnswer(c *gin.Context) {
	var req dto.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	answer, err := h.answerService.CreateAnswer(c.Request.Context(), req.Answer)
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusCreated, dto.AnswerResponse{ID: answer.ID, Answer: answer.Text})
}

// CreateQuestion создает вопрос с четырьмя вариантами ответа
func (h *AdminHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	input := service.CreateQuestionInput{
		Text:        req.Question,
		TestTypeID:  req.TestType,
		IsPublished: req.IsPublished == nil || *req.IsPublished,
		Answers:     make([]repository.NewAnswer, 0, len(req.Answers)),
	}
	for _, a := range req.Answers {
		input.Answers = append(input.Answers, repository.NewAnswer{Text: a.Answer, IsRightAnswer: a.IsRightAnswer})
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), input)
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCreatedQuestionResponse(question))
}

// GetQuestion возвращает вопрос с вариантами ответа, в том числе неопубликованный
func (h *AdminHandler) GetQuestion(c *gin.Context) {
	questionID := c.MustGet(ContextQuestionIDKey).(uint)

	question, err := h.questionService.GetQuestion(c.Request.Context(), questionID)
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCreatedQuestionResponse(question))
}

// ExportResults выгружает ответы пользователей в CSV (по умолчанию) или XLSX.
// Фильтры: user_id, test_type_id, date_from, date_to (YYYY-MM-DD).
func (h *AdminHandler) ExportResults(c *gin.Context) {
	filters, err := parseExportFilters(c)
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}

	rows, err := h.resultService.ExportResults(c.Request.Context(), filters)
	if err != nil {
		handleError(c, "AdminHandler", err)
		return
	}

	filename := fmt.Sprintf("test_results_%s", time.Now().Format("2006-01-02"))
	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		h.exportXLSX(c, rows, filename)
	case "csv":
		h.exportCSV(c, rows, filename)
	default:
		handleError(c, "AdminHandler", fmt.Errorf("%w: format must be csv or xlsx", apperrors.ErrValidation))
	}
}

var exportHeaders = []string{"ID", "Пользователь", "ID пользователя", "Тип теста", "Вопрос", "Ответ", "Верно", "Дата"}

func exportRecord(r repository.ResultExportRow) []string {
	right := "Нет"
	if r.IsRightAnswer {
		right = "Да"
	}
	return []string{
		strconv.FormatUint(uint64(r.ResultID), 10),
		sanitizeForExcel(r.Username),
		strconv.FormatUint(uint64(r.UserID), 10),
		sanitizeForExcel(r.TestTypeName),
		sanitizeForExcel(r.Question),
		sanitizeForExcel(r.Answer),
		right,
		r.SolutionDate.UTC().Format(time.RFC3339),
	}
}

// exportCSV экспортирует строки в CSV с BOM для корректного отображения UTF-8 в Excel
func (h *AdminHandler) exportCSV(c *gin.Context, rows []repository.ResultExportRow, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, r := range rows {
		writer.Write(exportRecord(r))
	}
}

// exportXLSX экспортирует строки в Excel через StreamWriter
func (h *AdminHandler) exportXLSX(c *gin.Context, rows []repository.ResultExportRow, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Результаты"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		log.Printf("[AdminHandler] Ошибка переименования листа: %v", err)
		sheetName = "Sheet1"
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[AdminHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := make([]interface{}, 0, len(exportHeaders))
	for _, title := range exportHeaders {
		headers = append(headers, title)
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[AdminHandler] Ошибка записи заголовков: %v", err)
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			r.ResultID,
			sanitizeForExcel(r.Username),
			r.UserID,
			sanitizeForExcel(r.TestTypeName),
			sanitizeForExcel(r.Question),
			sanitizeForExcel(r.Answer),
			r.IsRightAnswer,
			r.SolutionDate.UTC(),
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[AdminHandler] Ошибка записи строки %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[AdminHandler] Ошибка при Flush: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[AdminHandler] Ошибка записи Excel в response: %v", err)
	}
}

func parseExportFilters(c *gin.Context) (repository.ResultFilters, error) {
	var filters repository.ResultFilters

	for key, dst := range map[string]**uint{"user_id": &filters.UserID, "test_type_id": &filters.TestTypeID} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || v == 0 {
			return filters, fmt.Errorf("%w: invalid %s", apperrors.ErrValidation, key)
		}
		id := uint(v)
		*dst = &id
	}

	if raw := c.Query("date_from"); raw != "" {
		from, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return filters, fmt.Errorf("%w: invalid date_from", apperrors.ErrValidation)
		}
		filters.DateFrom = &from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return filters, fmt.Errorf("%w: invalid date_to", apperrors.ErrValidation)
		}
		// включительно до конца дня
		to = to.Add(24*time.Hour - time.Nanosecond)
		filters.DateTo = &to
	}
	return filters, nil
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
