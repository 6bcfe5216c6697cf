package container

import (
	"context"
	"fmt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/infrastructure/ai"
	"portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/token"

	"portfolio-backend/internal/domains/admin"
	adminHandler "portfolio-backend/internal/domains/admin/handler"
	adminRepo "portfolio-backend/internal/domains/admin/repository"
	adminService "portfolio-backend/internal/domains/admin/service"

	"portfolio-backend/internal/domains/project"
	projectHandler "portfolio-backend/internal/domains/project/handler"
	projectRepo "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"

	"portfolio-backend/internal/domains/blog"
	blogHandler "portfolio-backend/internal/domains/blog/handler"
	blogRepo "portfolio-backend/internal/domains/blog/repository"
	blogService "portfolio-backend/internal/domains/blog/service"

	"portfolio-backend/internal/domains/contact"
	contactHandler "portfolio-backend/internal/domains/contact/handler"
	contactRepo "portfolio-backend/internal/domains/contact/repository"
	contactService "portfolio-backend/internal/domains/contact/service"

	"portfolio-backend/internal/domains/aiplayground"
	aiHandler "portfolio-backend/internal/domains/aiplayground/handler"
	aiRepo "portfolio-backend/internal/domains/aiplayground/repository"
	aiService "portfolio-backend/internal/domains/aiplayground/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the process lifetime.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB          *database.PostgresDB
	Redis       *cache.RedisClient // nil when Redis is disabled
	WindowStore middleware.WindowStore
	Tokens      *token.Manager
	Mailer      email.Service
	AIClient    ai.Client

	// Repositories
	AdminRepo   admin.Repository
	ProjectRepo project.Repository
	BlogRepo    blog.Repository
	ContactRepo contact.Repository
	AIRepo      aiplayground.Repository

	// Services
	AdminService   admin.Service
	ProjectService project.Service
	BlogService    blog.Service
	ContactService contact.Service
	AIService      aiplayground.Service

	// Handlers
	AdminHandler   *adminHandler.AdminHandler
	ProjectHandler *projectHandler.ProjectHandler
	BlogHandler    *blogHandler.BlogHandler
	ContactHandler *contactHandler.ContactHandler
	AIHandler      *aiHandler.AIHandler
}

// NewContainer wires the whole graph in dependency order: config,
// infrastructure, repositories, services, handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// Redis is optional. Without it, rate limiting falls back to
	// per-process counters.
	if cfg.Redis.Enabled {
		c.Redis = cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := c.Redis.Connect(ctx); err != nil {
			logger.Warn("Redis unavailable, using in-memory rate limiting", map[string]interface{}{
				"error": err.Error(),
			})
			c.Redis = nil
		}
	}
	if c.Redis != nil {
		c.WindowStore = c.Redis
	} else {
		c.WindowStore = middleware.NewMemoryWindowStore()
	}

	c.Tokens = token.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	if cfg.Email.User != "" {
		c.Mailer = email.NewSMTPService(&cfg.Email)
	} else {
		c.Mailer = email.NoopService{}
	}

	c.AIClient = ai.NewGeminiClient(&cfg.AI)

	c.AdminRepo = adminRepo.NewPostgresRepository(c.DB.Pool)
	c.ProjectRepo = projectRepo.NewPostgresRepository(c.DB.Pool)
	c.BlogRepo = blogRepo.NewPostgresRepository(c.DB.Pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(c.DB.Pool)
	c.AIRepo = aiRepo.NewPostgresRepository(c.DB.Pool)

	c.AdminService = adminService.NewAdminService(c.AdminRepo, c.Tokens, cfg.App.AllowRegistration)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo)
	c.BlogService = blogService.NewBlogService(c.BlogRepo)
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.Mailer)
	c.AIService = aiService.NewAIService(c.AIClient, c.AIRepo)

	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.AIHandler = aiHandler.NewAIHandler(c.AIService)

	logger.Info("Container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
		"redis":       c.Redis != nil,
	})

	return c, nil
}

// Shutdown releases infrastructure connections.
func (c *Container) Shutdown() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Redis close failed", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
