package http

import (
	"errors"
	"net/http"

	"job-board/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler 封装了用户与公司登录的 HTTP 处理逻辑
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler 创建 AuthHandler 实例
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// UserLoginRequest 定义用户登录请求的结构体
type UserLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CompanyLoginRequest 定义公司登录请求的结构体
type CompanyLoginRequest struct {
	Handle   string `json:"handle" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 定义登录成功的响应结构体
type LoginResponse struct {
	Token string `json:"token"`
}

// UserLogin 处理 POST /user-auth
func (h *AuthHandler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "UserLogin", err)
		return
	}

	token, err := h.authService.LoginUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.loginFailed(c, logrus.WithField("username", req.Username), err, "invalid username")
		return
	}

	logrus.WithField("username", req.Username).Info("Handler.UserLogin: User logged in successfully")
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// CompanyLogin 处理 POST /company-auth
func (h *AuthHandler) CompanyLogin(c *gin.Context) {
	var req CompanyLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "CompanyLogin", err)
		return
	}

	token, err := h.authService.LoginCompany(c.Request.Context(), req.Handle, req.Password)
	if err != nil {
		h.loginFailed(c, logrus.WithField("handle", req.Handle), err, "invalid handle")
		return
	}

	logrus.WithField("handle", req.Handle).Info("Handler.CompanyLogin: Company logged in successfully")
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// loginFailed 区分标识不存在与密码错误，二者都是 401。
func (h *AuthHandler) loginFailed(c *gin.Context, logCtx *logrus.Entry, err error, identifierMsg string) {
	switch {
	case errors.Is(err, service.ErrInvalidIdentifier):
		logCtx.Warn("Login failed: unknown identifier")
		ErrorResponse(c, http.StatusUnauthorized, identifierMsg)
	case errors.Is(err, service.ErrInvalidPassword):
		logCtx.Warn("Login failed: invalid password")
		ErrorResponse(c, http.StatusUnauthorized, "invalid password")
	default:
		HandleServiceError(c, err)
	}
}
