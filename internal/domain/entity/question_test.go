package entity

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestValidateQuestionText(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		wantErr string
	}{
		{"корректный вопрос", "I ___ a student.", ""},
		{"пропуск в начале", "___ you like tea?", ""},
		{"пропуск в конце", "She is very ___", ""},
		{"кириллица и латиница", "Он сказал: I ___ it", ""},
		{"слишком короткий", "I ___ ok", "longer than 8"},
		{"ровно 8 символов", "ab ___ c", "longer than 8"},
		{"нет пропуска", "I am a student.", "exactly one"},
		{"два подчёркивания", "I __ a student.", "exactly one"},
		{"четыре подчёркивания", "I ____ a student.", "exactly one"},
		{"два пропуска", "I ___ a ___ student.", "exactly one"},
		{"лишнее подчёркивание", "I ___ a_student.", "exactly one"},
		{"только пунктуация", "!!! ___ ???...", "must not consist"},
		{"слишком длинный", "I ___ " + strings.Repeat("a", 260), "at most 256"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateQuestionText(tc.text)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestFlagsHaveNoGormDefault(t *testing.T) {
	testCases := []struct {
		model interface{}
		field string
	}{
		{&TestType{}, "IsPublished"},
		{&Question{}, "IsPublished"},
		{&QuestionAnswer{}, "IsRightAnswer"},
	}

	for _, tc := range testCases {
		s, err := schema.Parse(tc.model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)
		field := s.LookUpField(tc.field)
		require.NotNil(t, field, tc.field)
		assert.False(t, field.HasDefaultValue, "%s.%s: false должен записываться как есть", s.Name, tc.field)
	}
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "test_types", TestType{}.TableName())
	assert.Equal(t, "questions", Question{}.TableName())
	assert.Equal(t, "answers", Answer{}.TableName())
	assert.Equal(t, "question_answers", QuestionAnswer{}.TableName())
	assert.Equal(t, "test_results", TestResult{}.TableName())
}
