package app

import (
	"portfolio_backend/docs"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Check)

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 题目和主题目录是只读参考数据，允许游客浏览
		public.GET("/learning-style/questions", c.style.GetQuestions)
		public.GET("/topics", c.recommendation.ListTopics)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.auth.UpdateProfile)
		authGroup.POST("/user/avatar/upload", c.auth.UploadAvatar)

		// 作品集
		portfolio := authGroup.Group("/portfolio")
		{
			portfolio.GET("", c.portfolio.GetOverview)
			portfolio.PUT("/view", c.portfolio.UpdateView)
			portfolio.GET("/stats", c.portfolio.GetStats)
			portfolio.GET("/timeline", c.portfolio.GetTimeline)
			portfolio.GET("/learning-plan", c.portfolio.GetLearningPlan)
			portfolio.GET("/share", c.portfolio.Share)

			// 学习条目
			portfolio.GET("/items", c.item.ListItems)
			portfolio.POST("/items", c.item.CreateItem)
			portfolio.GET("/items/:id", c.item.GetItem)
			portfolio.PUT("/items/:id", c.item.UpdateItem)
			portfolio.DELETE("/items/:id", c.item.DeleteItem)
			portfolio.POST("/items/:id/feedback", c.item.AddFeedback)
			portfolio.POST("/items/:id/bookmark", c.item.Bookmark)
			portfolio.POST("/items/:id/collaboration-request", c.item.RequestCollaboration)
			portfolio.POST("/items/:id/media/upload", c.item.UploadMedia)

			// 技能与里程碑
			portfolio.GET("/skills", c.skill.GetSkills)
			portfolio.POST("/skills", c.skill.CreateSkill)
			portfolio.PUT("/skills/:id/level", c.skill.UpdateLevel)
			portfolio.POST("/skills/:id/endorse", c.skill.Endorse)
			portfolio.POST("/skills/:id/milestones", c.skill.AddMilestone)
		}
		authGroup.PATCH("/milestones/:id/achieve", c.skill.AchieveMilestone)

		// 学习风格测验
		style := authGroup.Group("/learning-style")
		{
			style.POST("/submit", c.style.SubmitQuiz)
			style.GET("/current", c.style.GetCurrent)
			style.GET("/history", c.style.GetHistory)
		}

		// 推荐
		recommendations := authGroup.Group("/recommendations")
		{
			recommendations.GET("/topics", c.recommendation.ListTopics)
			recommendations.GET("", c.recommendation.Recommend)
		}
	}

	// 3. 管理员接口：目录与题库维护
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		adminGroup.POST("/topics", c.catalog.CreateTopic)
		adminGroup.PUT("/topics/:code", c.catalog.UpdateTopic)
		adminGroup.POST("/topics/:code/resources", c.catalog.AddResource)
		adminGroup.PUT("/resources/:id", c.catalog.UpdateResource)
		adminGroup.DELETE("/resources/:id", c.catalog.DeleteResource)
		adminGroup.POST("/questions", c.catalog.CreateQuestion)
		adminGroup.PUT("/questions/:id", c.catalog.UpdateQuestion)
		adminGroup.DELETE("/questions/:id", c.catalog.DeleteQuestion)
	}
}
