package router

import (
	"github.com/devfolio/internal/handler"
	"github.com/gin-gonic/gin"
)

// Setup 配置 Gin 引擎和路由
func Setup(api *handler.API) *gin.Engine {
	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 对外 JSON API，无需认证
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/personal-info", api.GetPersonalInfo)

		apiGroup.GET("/skills", api.GetSkills)
		apiGroup.GET("/skills/:category", api.GetSkillsByCategory)

		apiGroup.GET("/projects", api.GetProjects)
		apiGroup.GET("/projects/:id", api.GetProject)

		apiGroup.GET("/technology-slider", api.GetTechnologySlider)

		apiGroup.POST("/contact", api.SubmitContactMessage)
		apiGroup.GET("/contact-messages", api.GetContactMessages)
	}

	return r
}
