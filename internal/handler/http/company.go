package http

import (
	"net/http"

	"job-board/internal/patch"
	"job-board/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler 封装了公司资源的 HTTP 处理逻辑
type CompanyHandler struct {
	companies *service.CompanyService
}

func NewCompanyHandler(companies *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// RegisterCompanyRequest 定义注册公司的请求体
type RegisterCompanyRequest struct {
	Handle   string  `json:"handle" binding:"required,max=191"`
	Password string  `json:"password" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email,max=191"`
	Logo     *string `json:"logo"`
}

// Register 处理 POST /companies (公开)
func (h *CompanyHandler) Register(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "RegisterCompany", err)
		return
	}
	company, err := h.companies.Register(c.Request.Context(), service.RegisterCompanyInput{
		Handle:   req.Handle,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Logo:     req.Logo,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, company)
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companies.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, companies)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	detail, err := h.companies.Get(c.Request.Context(), c.Param("handle"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, detail)
}

// Update 处理 PATCH /companies/:handle，请求体是任意可更新字段的子集
func (h *CompanyHandler) Update(c *gin.Context) {
	var fields patch.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		bindError(c, "UpdateCompany", err)
		return
	}
	detail, err := h.companies.Update(c.Request.Context(), actor(c), c.Param("handle"), fields)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, detail)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	detail, err := h.companies.Delete(c.Request.Context(), actor(c), c.Param("handle"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, detail)
}
