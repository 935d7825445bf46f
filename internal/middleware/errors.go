package middleware

import (
	"errors"
	"net/http"

	"job-board/internal/patch"
	"job-board/internal/service"

	"github.com/gin-gonic/gin"
)

// StatusFor 把业务错误映射为 HTTP 状态码和对外消息。
// 401/403/404/500 使用固定消息，不暴露内部细节。
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, "You need to authenticate before accessing this resource."
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "You are not allowed to access this resource."
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "Not Found"
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrEmptyUpdate):
		return http.StatusBadRequest, "No fields to update"
	case errors.Is(err, service.ErrBadRequest),
		errors.Is(err, patch.ErrUnknownColumn),
		errors.Is(err, patch.ErrInvalidValue):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "An unexpected error occurred"
}

// Abort 记录错误供请求日志使用，并以对应状态码终止请求。
func Abort(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
