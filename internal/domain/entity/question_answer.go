package entity

// QuestionAnswer связывает вопрос с вариантом ответа.
// Пара (question_id, answer_id) уникальна, правильный ответ у вопроса не больше одного
// (частичный уникальный индекс в миграции).
type QuestionAnswer struct {
	ID            uint `gorm:"primaryKey" json:"-"`
	QuestionID    uint `gorm:"not null;uniqueIndex:idx_question_answer" json:"question_id"`
	AnswerID      uint `gorm:"not null;uniqueIndex:idx_question_answer" json:"answer_id"`
	IsRightAnswer bool `gorm:"not null" json:"is_right_answer"`
}

// TableName определяет имя таблицы для GORM
func (QuestionAnswer) TableName() string {
	return "question_answers"
}
