package app

import (
	"studybuddy_backend/docs"
	"studybuddy_backend/internal/config"
	"studybuddy_backend/internal/middleware"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// Shareable by link, no login required.
		public.GET("/certificates/:id", c.certificate.GetByID)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/subjects", c.subject.ListSubjects)
		authGroup.GET("/subjects/:id", c.subject.GetSubject)
		authGroup.GET("/goals/:goalId/challenge", c.subject.GetChallenge)

		authGroup.POST("/goals/:goalId/complete", c.completion.MarkComplete)
		authGroup.POST("/goals/:goalId/quiz", c.completion.SubmitQuiz)
		authGroup.POST("/goals/:goalId/practical", c.completion.SubmitPractical)

		authGroup.GET("/certificates", c.certificate.ListMine)

		authGroup.GET("/profile", c.profile.GetProfile)
		authGroup.PUT("/profile", c.profile.UpdateProfile)
		authGroup.POST("/profile/picture", c.profile.UploadPicture)
		authGroup.GET("/leaderboard", c.profile.GetLeaderboard)

		authGroup.GET("/journal", c.journal.ListEntries)
		authGroup.POST("/journal", c.journal.CreateEntry)
		authGroup.PUT("/journal/:id", c.journal.UpdateEntry)
		authGroup.DELETE("/journal/:id", c.journal.DeleteEntry)
		authGroup.POST("/journal/:id/image", c.journal.AttachImage)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/subjects", c.admin.CreateSubject)
		admin.PUT("/subjects/:id", c.admin.UpdateSubject)
		admin.DELETE("/subjects/:id", c.admin.DeleteSubject)

		admin.POST("/materials", c.admin.CreateMaterial)
		admin.DELETE("/materials/:id", c.admin.DeleteMaterial)

		admin.POST("/goals", c.admin.CreateGoal)
		admin.DELETE("/goals/:id", c.admin.DeleteGoal)

		admin.POST("/questions", c.admin.CreateQuestion)
		admin.POST("/challenges", c.admin.CreateChallenge)
	}
}
