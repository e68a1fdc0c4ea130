package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUser_BeforeSave(t *testing.T) {
	preHashed, err := bcrypt.GenerateFromPassword([]byte("alreadyHashed"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("хеширует открытый пароль", func(t *testing.T) {
		user := &User{Username: "student", Email: "student@example.com", Password: "plainPassword1"}

		require.NoError(t, user.BeforeSave(nil))

		assert.NotEqual(t, "plainPassword1", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plainPassword1")))
	})

	t.Run("не хеширует повторно", func(t *testing.T) {
		user := &User{Username: "student", Password: string(preHashed)}

		require.NoError(t, user.BeforeSave(nil))

		assert.Equal(t, string(preHashed), user.Password, "Уже хешированный пароль не должен изменяться")
	})

	t.Run("пустой пароль остаётся пустым", func(t *testing.T) {
		user := &User{Username: "student"}

		require.NoError(t, user.BeforeSave(nil))

		assert.Empty(t, user.Password)
	})
}

func TestUser_CheckPassword(t *testing.T) {
	user := &User{Username: "student", Password: "correctPassword123"}
	require.NoError(t, user.BeforeSave(nil))

	assert.True(t, user.CheckPassword("correctPassword123"))
	assert.False(t, user.CheckPassword("wrongPassword456"))
	assert.False(t, user.CheckPassword(""), "Пустой пароль не должен совпадать")
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: UserRoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: UserRoleUser}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin(), "Пустая роль не даёт прав администратора")
	assert.Equal(t, "users", User{}.TableName())
}
