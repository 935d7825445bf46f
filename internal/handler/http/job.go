package http

import (
	"net/http"

	"job-board/internal/patch"
	"job-board/internal/service"

	"github.com/gin-gonic/gin"
)

// JobHandler 封装了职位资源的 HTTP 处理逻辑
type JobHandler struct {
	jobs *service.JobService
}

func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// CreateJobRequest 定义发布职位的请求体。所属公司取自 token，请求体中的 company 被忽略
type CreateJobRequest struct {
	Title  string  `json:"title" binding:"required"`
	Salary int     `json:"salary" binding:"gte=0"`
	Equity float64 `json:"equity" binding:"gte=0,lte=1"`
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "CreateJob", err)
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), actor(c), service.CreateJobInput{
		Title:  req.Title,
		Salary: req.Salary,
		Equity: req.Equity,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, job)
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	job, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	var fields patch.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		bindError(c, "UpdateJob", err)
		return
	}
	job, err := h.jobs.Update(c.Request.Context(), actor(c), id, fields)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	job, err := h.jobs.Delete(c.Request.Context(), actor(c), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, job)
}
