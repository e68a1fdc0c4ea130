package entity

// Answer представляет вариант ответа из общего пула.
// Текст уникален глобально: один и тот же ответ переиспользуется разными вопросами.
type Answer struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"column:text;size:64;not null;uniqueIndex" json:"answer"`
}

// TableName определяет имя таблицы для GORM
func (Answer) TableName() string {
	return "answers"
}
