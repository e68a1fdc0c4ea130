package dto

import (
	"time"

	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/service/testengine"
)

// TestTypeResponse представляет тип теста в списке
type TestTypeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AnswerResponse представляет вариант ответа без признака правильности
type AnswerResponse struct {
	ID     uint   `json:"id"`
	Answer string `json:"answer"`
}

// QuestionResponse представляет вопрос теста
type QuestionResponse struct {
	ID       uint             `json:"id"`
	Question string           `json:"question"`
	Answers  []AnswerResponse `json:"answers"`
}

// TestResponse — тип теста с выбранными вопросами
type TestResponse struct {
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	Questions []QuestionResponse `json:"questions"`
}

// SubmitResultRequest — ответы пользователя на тест
type SubmitResultRequest struct {
	UserID      *uint              `json:"user_id" binding:"omitempty,min=1"`
	UserAnswers []UserAnswerRequest `json:"user_answers" binding:"required,dive"`
}

// UserAnswerRequest — ответ на один вопрос; answer_id отсутствует, если вопрос пропущен
type UserAnswerRequest struct {
	QuestionID uint  `json:"question_id" binding:"required,min=1"`
	AnswerID   *uint `json:"answer_id" binding:"omitempty,min=1"`
}

// RightAnswersResponse — правильные ответы на отправленные вопросы
type RightAnswersResponse struct {
	RightAnswers []testengine.RightAnswer `json:"right_answers"`
}

// TestResultResponse — запись истории ответов пользователя
type TestResultResponse struct {
	ID           uint      `json:"id"`
	QuestionID   uint      `json:"question_id"`
	AnswerID     uint      `json:"answer_id"`
	SolutionDate time.Time `json:"solution_date"`
}

// PaginatedHistoryResponse представляет пагинированную историю ответов
type PaginatedHistoryResponse struct {
	Results []TestResultResponse `json:"results"`
	Total   int64                `json:"total"`
	Page    int                  `json:"page"`
	PerPage int                  `json:"per_page"`
}

// CreateTestTypeRequest — запрос на создание типа теста
type CreateTestTypeRequest struct {
	Name        string `json:"name" binding:"required,max=128"`
	IsPublished *bool  `json:"is_published"`
}

// CreateAnswerRequest — запрос на добавление ответа в пул
type CreateAnswerRequest struct {
	Answer string `json:"answer" binding:"required,max=64"`
}

// CreateQuestionRequest — запрос на создание вопроса с вариантами ответа
type CreateQuestionRequest struct {
	Question    string                  `json:"question" binding:"required,max=256"`
	IsPublished *bool                   `json:"is_published"`
	TestType    *uint                   `json:"test_type" binding:"omitempty,min=1"`
	Answers     []QuestionAnswerRequest `json:"answers" binding:"required,dive"`
}

// QuestionAnswerRequest — вариант ответа в запросе на создание вопроса
type QuestionAnswerRequest struct {
	Answer        string `json:"answer" binding:"required,max=64"`
	IsRightAnswer bool   `json:"is_right_answer"`
}

// CreatedQuestionResponse — созданный вопрос с признаками правильных ответов
type CreatedQuestionResponse struct {
	ID          uint             `json:"id"`
	Question    string           `json:"question"`
	IsPublished bool             `json:"is_published"`
	TestType    *uint            `json:"test_type"`
	Answers     []AnswerResponse `json:"answers"`
}

// NewTestTypeResponses создает DTO списка типов тестов
func NewTestTypeResponses(testTypes []entity.TestType) []TestTypeResponse {
	out := make([]TestTypeResponse, 0, len(testTypes))
	for _, tt := range testTypes {
		out = append(out, TestTypeResponse{ID: tt.ID, Name: tt.Name})
	}
	return out
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	answers := make([]AnswerResponse, 0, len(q.Answers))
	for _, a := range q.Answers {
		answers = append(answers, AnswerResponse{ID: a.ID, Answer: a.Text})
	}
	return QuestionResponse{ID: q.ID, Question: q.Text, Answers: answers}
}

// NewTestResponse создает DTO теста с вопросами
func NewTestResponse(testType *entity.TestType, questions []entity.Question) TestResponse {
	resp := TestResponse{
		ID:        testType.ID,
		Name:      testType.Name,
		Questions: make([]QuestionResponse, 0, len(questions)),
	}
	for i := range questions {
		resp.Questions = append(resp.Questions, NewQuestionResponse(&questions[i]))
	}
	return resp
}

// NewCreatedQuestionResponse создает DTO созданного вопроса
func NewCreatedQuestionResponse(q *entity.Question) CreatedQuestionResponse {
	return CreatedQuestionResponse{
		ID:          q.ID,
		Question:    q.Text,
		IsPublished: q.IsPublished,
		TestType:    q.TestTypeID,
		Answers:     NewQuestionResponse(q).Answers,
	}
}

// NewPaginatedHistoryResponse создает DTO страницы истории
func NewPaginatedHistoryResponse(results []entity.TestResult, total int64, page, perPage int) PaginatedHistoryResponse {
	resp := PaginatedHistoryResponse{
		Results: make([]TestResultResponse, 0, len(results)),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}
	for _, r := range results {
		resp.Results = append(resp.Results, TestResultResponse{
			ID:           r.ID,
			QuestionID:   r.QuestionID,
			AnswerID:     r.AnswerID,
			SolutionDate: r.SolutionDate,
		})
	}
	return resp
}

// ToSubmissions преобразует запрос в ответы для проверки
func (r *SubmitResultRequest) ToSubmissions() []testengine.Submission {
	out := make([]testengine.Submission, 0, len(r.UserAnswers))
	for _, a := range r.UserAnswers {
		out = append(out, testengine.Submission{QuestionID: a.QuestionID, AnswerID: a.AnswerID})
	}
	return out
}
