package testengine

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
)

// Grader проверяет ответы пользователя и сообщает правильные ответы.
// Работает в две фазы: Validate (без записи, может вернуть ошибку),
// затем сохранение результатов (только для известного пользователя) и отчёт.
type Grader struct {
	deps *Dependencies
}

// NewGrader создаёт новый Grader
func NewGrader(deps *Dependencies) *Grader {
	return &Grader{deps: deps}
}

// Validate проверяет, что вопросы не повторяются и что каждый указанный ответ
// действительно является вариантом своего вопроса. Пропущенные вопросы не проверяются.
func (g *Grader) Validate(ctx context.Context, submission []Submission) error {
	questions := make(map[uint]struct{}, len(submission))
	answered := make([]repository.QuestionAnswerPair, 0, len(submission))

	for _, s := range submission {
		if _, ok := questions[s.QuestionID]; ok {
			return fmt.Errorf("%w (question %d)", ErrDuplicateQuestion, s.QuestionID)
		}
		questions[s.QuestionID] = struct{}{}

		if !s.Skipped() {
			answered = append(answered, repository.QuestionAnswerPair{QuestionID: s.QuestionID, AnswerID: *s.AnswerID})
		}
	}

	if len(answered) == 0 {
		return nil
	}

	existing, err := g.deps.Questions.FindExistingPairs(ctx, answered)
	if err != nil {
		return err
	}
	valid := make(map[repository.QuestionAnswerPair]struct{}, len(existing))
	for _, p := range existing {
		valid[p] = struct{}{}
	}
	for _, p := range answered {
		if _, ok := valid[p]; !ok {
			return fmt.Errorf("%w (answer %d for question %d)", ErrInvalidAnswerReference, p.AnswerID, p.QuestionID)
		}
	}
	return nil
}

// Grade проверяет ответы, сохраняет их для известного пользователя одной вставкой
// и возвращает правильные ответы на все вопросы из submission, включая пропущенные.
// userID == nil — анонимная отправка: ответы проверяются, но не сохраняются.
func (g *Grader) Grade(ctx context.Context, submission []Submission, userID *uint) ([]RightAnswer, error) {
	if err := g.Validate(ctx, submission); err != nil {
		return nil, err
	}

	if userID != nil {
		results := make([]entity.TestResult, 0, len(submission))
		for _, s := range submission {
			if s.Skipped() {
				continue
			}
			results = append(results, entity.TestResult{
				UserID:     *userID,
				QuestionID: s.QuestionID,
				AnswerID:   *s.AnswerID,
			})
		}
		if len(results) > 0 {
			if err := g.deps.Results.BulkInsert(ctx, results); err != nil {
				log.Printf("[Grader] Ошибка сохранения %d результатов пользователя #%d: %v", len(results), *userID, err)
				return nil, err
			}
		}
	}

	questionIDs := make([]uint, 0, len(submission))
	for _, s := range submission {
		questionIDs = append(questionIDs, s.QuestionID)
	}
	rightAnswers, err := g.deps.Questions.GetRightAnswers(ctx, questionIDs)
	if err != nil {
		return nil, err
	}
	return rightAnswers, nil
}
