package http

import (
	"net/http"

	"job-board/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers 汇总所有资源的 handler，供 RegisterRoutes 使用
type Handlers struct {
	Auth         *AuthHandler
	Companies    *CompanyHandler
	Users        *UserHandler
	Jobs         *JobHandler
	Applications *ApplicationHandler
}

// RegisterRoutes 在 router 上挂载全部路由及其鉴权 guard
func RegisterRoutes(router gin.IRouter, guards *middleware.Guards, h Handlers) {
	authed := guards.RequireAuthenticated()

	router.POST("/user-auth", h.Auth.UserLogin)
	router.POST("/company-auth", h.Auth.CompanyLogin)

	companies := router.Group("/companies")
	{
		companies.POST("", h.Companies.Register)
		companies.GET("", authed, h.Companies.List)
		companies.GET("/:handle", authed, h.Companies.Get)
		companies.PATCH("/:handle", guards.RequireMatchingCompany("handle"), h.Companies.Update)
		companies.DELETE("/:handle", guards.RequireMatchingCompany("handle"), h.Companies.Delete)
	}

	users := router.Group("/users")
	{
		users.POST("", h.Users.Register)
		users.GET("", authed, h.Users.List)
		users.GET("/:username", authed, h.Users.Get)
		users.PATCH("/:username", guards.RequireMatchingUser("username"), h.Users.Update)
		users.DELETE("/:username", guards.RequireMatchingUser("username"), h.Users.Delete)
	}

	jobs := router.Group("/jobs")
	{
		jobs.POST("", guards.RequireCompany(), h.Jobs.Create)
		jobs.GET("", authed, h.Jobs.List)
		jobs.GET("/:id", authed, h.Jobs.Get)
		// 职位归属由 OwnershipResolver 判定
		jobs.PATCH("/:id", guards.RequireCompany(), h.Jobs.Update)
		jobs.DELETE("/:id", guards.RequireCompany(), h.Jobs.Delete)
		jobs.POST("/:id/applications", guards.RequireUser(), h.Applications.Apply)
	}

	apps := router.Group("/applications", authed)
	{
		apps.GET("", h.Applications.List)
		apps.GET("/:id", h.Applications.Get)
		apps.DELETE("/:id", h.Applications.Delete)
	}

	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })
}
