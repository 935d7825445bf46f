package http

import (
	"net/http"

	"job-board/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HandleServiceError 把 service 层错误交给统一的状态码映射，并记录服务端错误。
func HandleServiceError(c *gin.Context, err error) {
	status, _ := middleware.StatusFor(err)
	if status >= http.StatusInternalServerError {
		// 内部错误只记录日志，不回传细节
		logrus.WithError(err).WithField("path", c.FullPath()).Error("Unhandled internal server error")
	}
	middleware.Abort(c, err)
}

// bindError 以 400 响应请求体格式或校验错误。
func bindError(c *gin.Context, handler string, err error) {
	logrus.WithError(err).Warnf("Handler.%s: Invalid input format", handler)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
}
