package entity

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

const (
	// QuestionAnswersCount — ровно столько вариантов ответа должно быть у вопроса
	QuestionAnswersCount = 4
	// QuestionBlank — разделитель-пропуск в тексте вопроса
	QuestionBlank = "___"

	questionMinLength = 9
	questionMaxLength = 256
)

var (
	// Один пропуск из трёх подчёркиваний, других подчёркиваний нет
	questionBlankPattern = regexp.MustCompile(`^[^_]*___[^_]*$`)
	// Хотя бы одна латинская буква
	questionLetterPattern = regexp.MustCompile(`(?i)[a-z]`)
)

// Question представляет вопрос с пропуском (fill-in-the-blank)
type Question struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Text        string    `gorm:"column:text;size:256;not null;uniqueIndex" json:"question"`
	// DEFAULT TRUE задан в миграции; в тегах его нет, иначе GORM подменяет false на true при Create
	IsPublished bool      `gorm:"not null;index" json:"is_published"`
	TestTypeID  *uint     `gorm:"index" json:"test_type,omitempty"`
	Answers     []Answer  `gorm:"many2many:question_answers;joinForeignKey:QuestionID;joinReferences:AnswerID" json:"answers,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// ValidateQuestionText проверяет формат текста вопроса:
// длина больше 8 символов, ровно один пропуск "___" и хотя бы одна буква.
func ValidateQuestionText(text string) error {
	length := utf8.RuneCountInString(text)
	if length < questionMinLength {
		return fmt.Errorf("question must be longer than %d characters", questionMinLength-1)
	}
	if length > questionMaxLength {
		return fmt.Errorf("question must be at most %d characters", questionMaxLength)
	}
	if !questionBlankPattern.MatchString(text) {
		return fmt.Errorf("question must contain exactly one %q separator and no other underscores", QuestionBlank)
	}
	if !questionLetterPattern.MatchString(text) {
		return fmt.Errorf("question must not consist of underscores, spaces or punctuation only")
	}
	return nil
}
