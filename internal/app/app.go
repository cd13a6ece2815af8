package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/payments"
	"jobboard_backend/internal/regions"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/session"
	"jobboard_backend/internal/validator"
	"jobboard_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedReferenceData(gormDB); err != nil {
		logger.Fatal("Failed to seed reference data", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx := context.Background()
	workers.NewExpiryWorker(repositories.NewJobRepository(gormDB)).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer, sessions := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer, sessions)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) (*services.ServiceContainer, session.Store) {
	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	orgRepo := repositories.NewOrganizationRepository(gormDB)
	schoolRepo := repositories.NewSchoolRepository(gormDB)
	regionRepo := repositories.NewRegionRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)

	var sessions session.Store
	if cfg.Redis.Addr != "" {
		sessions = session.NewRedisStore(session.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("Session store: redis", "addr", cfg.Redis.Addr)
	} else {
		sessions = session.NewMemoryStore()
		logger.Warn("Session store: in-memory (set redis.addr for multi-instance deployments)")
	}

	mailer := email.NewGomailSender(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUser:     cfg.Email.SMTPUser,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
	})

	gateway := payments.NewStripeGateway(cfg.Stripe.SecretKey)

	notifier := services.NewNotificationService(mailer, services.NotifyConfig{
		AdminEmails:     cfg.Notify.AdminEmails,
		SystemEmail:     cfg.Notify.SystemEmail,
		SiteURL:         cfg.Server.SiteURL,
		ControlPanelURL: cfg.Notify.ControlPanelURL,
	})
	groupService := services.NewGroupService(userRepo)
	authService := services.NewAuthService(userRepo, groupService, notifier, mailer, sessions, cfg.Server.SiteURL)
	jobService := services.NewJobService(jobRepo, userRepo, schoolRepo, regionRepo, sessions)
	activationService := services.NewActivationService(jobRepo, userRepo, paymentRepo, gateway, sessions, notifier, services.PricingConfig{
		TwelveMonth: cfg.Pricing.TwelveMonth,
		SixMonth:    cfg.Pricing.SixMonth,
	})
	orgService := services.NewOrganizationService(orgRepo, userRepo, notifier)

	return &services.ServiceContainer{
		AuthService:         authService,
		JobService:          jobService,
		ActivationService:   activationService,
		OrganizationService: orgService,
		NotificationService: notifier,
		GroupService:        groupService,
	}, sessions
}

func initializeHandlers(sc *services.ServiceContainer, sessions session.Store) *handlers.AppHandlers {
	v := validator.New()
	base := handlers.NewBaseHandler(v)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(base, sc.AuthService, sessions),
		JobPostingHandler:   handlers.NewJobPostingHandler(base, sc.JobService, sc.ActivationService, sessions),
		OrganizationHandler: handlers.NewOrganizationHandler(base, sc.OrganizationService),
		FieldOptionsHandler: handlers.NewFieldOptionsHandler(base),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())
	return ginRouter
}

// seedReferenceData makes sure the fixed region categories and the job
// posters group exist.
func seedReferenceData(gormDB *gorm.DB) error {
	regionRepo := repositories.NewRegionRepository(gormDB)
	for _, r := range regions.All {
		if err := regionRepo.Upsert(&models.RegionCategory{
			Slug:  string(r.Slug),
			Title: r.Title,
		}); err != nil {
			return fmt.Errorf("seed region %s: %w", r.Slug, err)
		}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	if _, err := userRepo.FindGroupByHandle(models.GroupJobPosters); err != nil {
		if !errors.Is(err, repositories.ErrGroupNotFound) {
			return err
		}
		if err := userRepo.CreateGroup(&models.UserGroup{
			Handle: models.GroupJobPosters,
			Name:   "Job Posters",
		}); err != nil {
			return fmt.Errorf("seed job posters group: %w", err)
		}
		logger.Info("Created job posters group")
	}

	return nil
}
