package http

import (
	"strconv"

	"job-board/internal/domain"
	"job-board/internal/middleware"
	"job-board/internal/service"

	"github.com/gin-gonic/gin"
)

// parseID 解析数字路由参数。非数字的 ID 不可能对应任何记录，按 NotFound 处理。
func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrNotFound
	}
	return uint(id), nil
}

// actor 返回 guard 写入上下文的身份；公开路由上为零值。
func actor(c *gin.Context) domain.Identity {
	id, _ := middleware.IdentityFrom(c)
	return id
}
