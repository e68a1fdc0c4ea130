package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader — заголовок с идентификатором запроса
	RequestIDHeader = "X-Request-ID"
	// ContextRequestIDKey — ключ контекста Gin с идентификатором запроса
	ContextRequestIDKey = "request_id"
)

// RequestID присваивает каждому запросу UUID. Корректный UUID из заголовка клиента сохраняется.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
