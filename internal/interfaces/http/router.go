package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"inkletter/internal/application/newsletter/usecases"
	"inkletter/internal/infrastructure/cache"
	"inkletter/internal/infrastructure/config"
	"inkletter/internal/infrastructure/email"
	"inkletter/internal/infrastructure/repository"
	"inkletter/internal/interfaces/http/handlers"
	"inkletter/internal/interfaces/http/middleware"
	"inkletter/internal/interfaces/http/routes"
	"inkletter/internal/shared/logger"
)

// Router wires the subscription use cases into the Gin engine.
type Router struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	cfg         *config.Config
	logger      logger.Interface
}

func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	return &Router{
		engine:      gin.New(),
		db:          db,
		redisClient: redisClient,
		cfg:         cfg,
		logger:      log,
	}
}

// SetupRoutes builds the dependency graph and registers all routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	subscriptionRepo := repository.NewSubscriptionRepository(r.db, r.logger)

	mailer := email.NewSMTPMailer(email.SMTPConfig{
		Host:        r.cfg.Email.SMTPHost,
		Port:        r.cfg.Email.SMTPPort,
		Username:    r.cfg.Email.SMTPUser,
		Password:    r.cfg.Email.SMTPPassword,
		FromAddress: r.cfg.Email.FromAddress,
		FromName:    r.cfg.Email.FromName,
		BaseURL:     r.cfg.Server.BaseURL,
	})

	sessionTTL := time.Duration(r.cfg.Newsletter.SignupSessionTTLHours) * time.Hour
	sessionStore := cache.NewSignupSessionStore(r.redisClient, sessionTTL)
	attemptStore := cache.NewConfirmAttemptStore(
		r.redisClient,
		r.cfg.Newsletter.MaxConfirmAttempts,
		time.Duration(r.cfg.Newsletter.ConfirmLockoutMinutes)*time.Minute,
	)

	registerUC := usecases.NewRegisterEmailUseCase(subscriptionRepo, mailer, r.logger)
	confirmUC := usecases.NewConfirmByCodeUseCase(subscriptionRepo, attemptStore, r.logger)
	activateUC := usecases.NewConfirmByURLUseCase(subscriptionRepo, attemptStore, r.logger)
	resendUC := usecases.NewResendConfirmationUseCase(subscriptionRepo, mailer, r.logger)

	newsletterHandler := handlers.NewNewsletterHandler(
		registerUC,
		confirmUC,
		activateUC,
		resendUC,
		sessionStore,
		r.logger,
		sessionTTL,
		r.cfg.Server.Mode == "release",
	)

	rateLimiter := middleware.NewRateLimiter(
		r.redisClient,
		r.cfg.Newsletter.RateLimitPerMinute,
		time.Minute,
		r.logger,
	)

	routes.SetupNewsletterRoutes(r.engine, &routes.NewsletterRouteConfig{
		NewsletterHandler: newsletterHandler,
		RateLimiter:       rateLimiter,
	})

	r.engine.GET("/healthz", r.healthCheck)
}

// GetEngine returns the underlying Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"database": "ok", "redis": "ok"}

	if sqlDB, err := r.db.DB(); err != nil {
		checks["database"] = "error"
		status = http.StatusServiceUnavailable
	} else if err := sqlDB.PingContext(ctx); err != nil {
		checks["database"] = "error"
		status = http.StatusServiceUnavailable
	}

	if err := r.redisClient.Ping(ctx).Err(); err != nil {
		checks["redis"] = "error"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
}
