package http

import (
	"net/http"

	"job-board/internal/patch"
	"job-board/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler 封装了用户资源的 HTTP 处理逻辑
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterUserRequest 定义注册用户的请求体
type RegisterUserRequest struct {
	Username       string  `json:"username" binding:"required,max=191"`
	Password       string  `json:"password" binding:"required"`
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name" binding:"required"`
	Email          string  `json:"email" binding:"required,email,max=191"`
	Photo          *string `json:"photo"`
	CurrentCompany *string `json:"current_company"`
}

// Register 处理 POST /users (公开)
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "RegisterUser", err)
		return
	}
	user, err := h.users.Register(c.Request.Context(), service.RegisterUserInput{
		Username:       req.Username,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Photo:          req.Photo,
		CurrentCompany: req.CurrentCompany,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, user)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var fields patch.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		bindError(c, "UpdateUser", err)
		return
	}
	user, err := h.users.Update(c.Request.Context(), actor(c), c.Param("username"), fields)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	user, err := h.users.Delete(c.Request.Context(), actor(c), c.Param("username"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, user)
}
