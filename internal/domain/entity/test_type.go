package entity

import "time"

// TestType представляет тип языкового теста (например, уровень языка)
type TestType struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:128;not null;uniqueIndex" json:"name"`
	// DEFAULT TRUE задан в миграции; в тегах его нет, иначе GORM подменяет false на true при Create
	IsPublished bool       `gorm:"not null" json:"is_published"`
	Questions   []Question `gorm:"foreignKey:TestTypeID;constraint:OnDelete:SET NULL" json:"questions,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (TestType) TableName() string {
	return "test_types"
}
