package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/langtest-api/internal/domain/entity"
	"github.com/yourusername/langtest-api/internal/domain/repository"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// CreateWithAnswers создает вопрос вместе с ответами и связями в одной транзакции.
// Ответы с уже существующим текстом не дублируются, а переиспользуются.
func (r *QuestionRepo) CreateWithAnswers(ctx context.Context, question *entity.Question, answers []repository.NewAnswer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		question.Answers = nil
		if err := tx.Create(question).Error; err != nil {
			return wrapWriteError(err, "question")
		}

		texts := make([]string, 0, len(answers))
		for _, a := range answers {
			texts = append(texts, a.Text)
		}

		var existing []entity.Answer
		if err := tx.Where("text IN ?", texts).Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to load existing answers: %w", err)
		}
		byText := make(map[string]entity.Answer, len(answers))
		for _, a := range existing {
			byText[a.Text] = a
		}

		var missing []entity.Answer
		for _, text := range texts {
			if _, ok := byText[text]; !ok {
				missing = append(missing, entity.Answer{Text: text})
			}
		}
		if len(missing) > 0 {
			if err := tx.Create(&missing).Error; err != nil {
				return wrapWriteError(err, "answer")
			}
			for _, a := range missing {
				byText[a.Text] = a
			}
		}

		links := make([]entity.QuestionAnswer, 0, len(answers))
		question.Answers = make([]entity.Answer, 0, len(answers))
		for _, a := range answers {
			stored := byText[a.Text]
			links = append(links, entity.QuestionAnswer{
				QuestionID:    question.ID,
				AnswerID:      stored.ID,
				IsRightAnswer: a.IsRightAnswer,
			})
			question.Answers = append(question.Answers, stored)
		}
		if err := tx.Create(&links).Error; err != nil {
			return wrapWriteError(err, "question answer")
		}
		return nil
	})
}

// GetByID возвращает вопрос по ID вместе с вариантами ответов
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).
		Preload("Answers", orderAnswers).
		First(&question, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &question, nil
}

// FindPublishedIDs возвращает ID опубликованных вопросов типа теста.
// Вопросы из excludeIDs (уже решённые пользователем) исключаются.
func (r *QuestionRepo) FindPublishedIDs(ctx context.Context, testTypeID uint, excludeIDs []uint) ([]uint, error) {
	var ids []uint
	query := r.db.WithContext(ctx).
		Model(&entity.Question{}).
		Where("test_type_id = ? AND is_published = ?", testTypeID, true)

	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	if err := query.Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to find published questions for test type %d: %w", testTypeID, err)
	}
	return ids, nil
}

// GetWithAnswers загружает вопросы с вариантами ответов. Порядок не гарантируется.
func (r *QuestionRepo) GetWithAnswers(ctx context.Context, ids []uint) ([]entity.Question, error) {
	if len(ids) == 0 {
		return []entity.Question{}, nil
	}
	var questions []entity.Question
	err := r.db.WithContext(ctx).
		Preload("Answers", orderAnswers).
		Where("id IN ?", ids).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load questions with answers: %w", err)
	}
	return questions, nil
}

// FindExistingPairs проверяет пары (вопрос, ответ) одним запросом
func (r *QuestionRepo) FindExistingPairs(ctx context.Context, pairs []repository.QuestionAnswerPair) ([]repository.QuestionAnswerPair, error) {
	if len(pairs) == 0 {
		return []repository.QuestionAnswerPair{}, nil
	}
	tuples := make([][]interface{}, 0, len(pairs))
	for _, p := range pairs {
		tuples = append(tuples, []interface{}{p.QuestionID, p.AnswerID})
	}

	var existing []repository.QuestionAnswerPair
	err := r.db.WithContext(ctx).
		Model(&entity.QuestionAnswer{}).
		Select("question_id, answer_id").
		Where("(question_id, answer_id) IN ?", tuples).
		Scan(&existing).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check question answers: %w", err)
	}
	return existing, nil
}

// GetRightAnswers возвращает правильные ответы для вопросов
func (r *QuestionRepo) GetRightAnswers(ctx context.Context, questionIDs []uint) ([]repository.QuestionAnswerPair, error) {
	if len(questionIDs) == 0 {
		return []repository.QuestionAnswerPair{}, nil
	}
	var rightAnswers []repository.QuestionAnswerPair
	err := r.db.WithContext(ctx).
		Model(&entity.QuestionAnswer{}).
		Select("question_id, answer_id").
		Where("question_id IN ? AND is_right_answer = ?", questionIDs, true).
		Order("question_id").
		Scan(&rightAnswers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load right answers: %w", err)
	}
	return rightAnswers, nil
}

func orderAnswers(db *gorm.DB) *gorm.DB {
	return db.Order("answers.id")
}
