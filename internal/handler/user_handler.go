package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/langtest-api/internal/handler/dto"
	"github.com/yourusername/langtest-api/internal/middleware"
	apperrors "github.com/yourusername/langtest-api/internal/pkg/errors"
	"github.com/yourusername/langtest-api/internal/service"
)

// UserHandler обрабатывает запросы, связанные с пользователями
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe возвращает профиль текущего пользователя
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		handleError(c, "UserHandler", apperrors.ErrUnauthorized)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		handleError(c, "UserHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
