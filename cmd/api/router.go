package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.ClientIP(),
	)

	// Global API budget; route groups layer stricter limits on top.
	apiLimit := middleware.RateLimit("api", c.WindowStore, c.Config.RateLimit.API,
		"Too many requests, please try again later.")

	api := router.Group("/api", apiLimit)
	{
		api.GET("/health", healthCheckHandler(c))

		setupAdminRoutes(api, c)
		setupProjectRoutes(api, c)
		setupBlogRoutes(api, c)
		setupContactRoutes(api, c)
		setupAIRoutes(api, c)
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Route not found")
	})

	return router
}

func setupAdminRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := middleware.Auth(c.Tokens, c.AdminRepo)

	loginLimit := middleware.RateLimit("login", c.WindowStore, c.Config.RateLimit.Login,
		"Too many login attempts, please try again later.")
	registerLimit := middleware.RateLimit("register", c.WindowStore, c.Config.RateLimit.Register,
		"Too many registration attempts, please try again later.")

	admin := api.Group("/admin")
	{
		admin.POST("/register", registerLimit, c.AdminHandler.Register)
		admin.POST("/login", loginLimit, c.AdminHandler.Login)
		admin.POST("/refresh", c.AdminHandler.Refresh)
		admin.POST("/logout", auth, c.AdminHandler.Logout)
		admin.GET("/me", auth, c.AdminHandler.Me)
	}
}

func setupProjectRoutes(api *gin.RouterGroup, c *container.Container) {
	adminOnly := []gin.HandlerFunc{
		middleware.Auth(c.Tokens, c.AdminRepo),
		middleware.AdminOnly(),
	}

	projects := api.Group("/projects")
	{
		projects.GET("", c.ProjectHandler.List)
		projects.GET("/:id", c.ProjectHandler.Get)

		projects.POST("", append(adminOnly, c.ProjectHandler.Create)...)
		projects.PUT("/:id", append(adminOnly, c.ProjectHandler.Update)...)
		projects.DELETE("/:id", append(adminOnly, c.ProjectHandler.Delete)...)
	}
}

func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	adminOnly := []gin.HandlerFunc{
		middleware.Auth(c.Tokens, c.AdminRepo),
		middleware.AdminOnly(),
	}

	posts := api.Group("/posts")
	{
		posts.GET("", c.BlogHandler.List)
		posts.GET("/all", append(adminOnly, c.BlogHandler.ListAll)...)
		posts.GET("/id/:id", append(adminOnly, c.BlogHandler.Get)...)
		posts.GET("/:slug", c.BlogHandler.GetBySlug)

		posts.POST("", append(adminOnly, c.BlogHandler.Create)...)
		posts.PUT("/:id", append(adminOnly, c.BlogHandler.Update)...)
		posts.DELETE("/:id", append(adminOnly, c.BlogHandler.Delete)...)
	}
}

func setupContactRoutes(api *gin.RouterGroup, c *container.Container) {
	adminOnly := []gin.HandlerFunc{
		middleware.Auth(c.Tokens, c.AdminRepo),
		middleware.AdminOnly(),
	}

	contactLimit := middleware.RateLimit("contact", c.WindowStore, c.Config.RateLimit.Contact,
		"Too many messages sent, please try again later.")

	contact := api.Group("/contact")
	{
		contact.POST("", contactLimit, c.ContactHandler.Submit)

		contact.GET("", append(adminOnly, c.ContactHandler.List)...)
		contact.PATCH("/:id", append(adminOnly, c.ContactHandler.MarkRead)...)
		contact.DELETE("/:id", append(adminOnly, c.ContactHandler.Delete)...)
	}
}

func setupAIRoutes(api *gin.RouterGroup, c *container.Container) {
	aiLimit := middleware.RateLimit("ai", c.WindowStore, c.Config.RateLimit.AI,
		"AI request limit reached, please try again later.")

	ai := api.Group("/ai")
	{
		ai.POST("/text", aiLimit, c.AIHandler.GenerateText)
		ai.POST("/image", aiLimit, c.AIHandler.DescribeImage)
		ai.GET("/models", c.AIHandler.Models)
		ai.GET("/health", c.AIHandler.Health)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":      "ok",
			"timestamp":   time.Now().Format(time.RFC3339),
			"version":     appCtx.Config.App.Version,
			"environment": appCtx.Config.App.Environment,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error"
			health["status"] = "degraded"
		}

		redisStatus := "disabled"
		if appCtx.Redis != nil {
			redisStatus = "ok"
			if err := appCtx.Redis.Ping(ctx); err != nil {
				redisStatus = "error"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
