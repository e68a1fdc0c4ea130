package entity

import (
	"time"
)

// TestResult фиксирует, какой ответ пользователь выбрал на вопрос.
// Записи только добавляются: ядро никогда их не обновляет и не удаляет.
type TestResult struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	QuestionID   uint      `gorm:"not null;index" json:"question_id"`
	AnswerID     uint      `gorm:"not null" json:"answer_id"`
	SolutionDate time.Time `gorm:"not null" json:"solution_date"`
}

// TableName определяет имя таблицы для GORM
func (TestResult) TableName() string {
	return "test_results"
}
