package http

import (
	"net/http"

	"job-board/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler 封装了职位申请的 HTTP 处理逻辑
type ApplicationHandler struct {
	apps *service.ApplicationService
}

func NewApplicationHandler(apps *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// Apply 处理 POST /jobs/:id/applications，申请人取自 token
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := parseID(c, "id")
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	app, err := h.apps.Apply(c.Request.Context(), actor(c), jobID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, app)
}

// List 返回调用方可见的申请
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.apps.ListForActor(c.Request.Context(), actor(c))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, apps)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	app, err := h.apps.Get(c.Request.Context(), actor(c), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, app)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	app, err := h.apps.Delete(c.Request.Context(), actor(c), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, app)
}
