package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"studybuddy_backend/internal/config"
	"studybuddy_backend/internal/controller"
	"studybuddy_backend/internal/render"
	"studybuddy_backend/internal/repository"
	"studybuddy_backend/internal/service"
	"studybuddy_backend/pkg/database"
	"studybuddy_backend/pkg/logger"
	"studybuddy_backend/pkg/monitoring"
	"studybuddy_backend/pkg/security"
	"studybuddy_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	profile     *repository.ProfileRepository
	subject     *repository.SubjectRepository
	material    *repository.MaterialRepository
	goal        *repository.GoalRepository
	question    *repository.QuestionRepository
	challenge   *repository.ChallengeRepository
	progress    *repository.ProgressRepository
	certificate *repository.CertificateRepository
	journal     *repository.JournalRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	content     *service.ContentService
	scoring     *service.ScoringService
	certificate *service.CertificateService
	completion  *service.CompletionService
	profile     *service.ProfileService
	journal     *service.JournalService
}

type controllers struct {
	auth        *controller.AuthController
	subject     *controller.SubjectController
	completion  *controller.CompletionController
	certificate *controller.CertificateController
	profile     *controller.ProfileController
	journal     *controller.JournalController
	admin       *controller.AdminController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		profile:     repository.NewProfileRepository(db),
		subject:     repository.NewSubjectRepository(db),
		material:    repository.NewMaterialRepository(db),
		goal:        repository.NewGoalRepository(db),
		question:    repository.NewQuestionRepository(db),
		challenge:   repository.NewChallengeRepository(db),
		progress:    repository.NewProgressRepository(db),
		certificate: repository.NewCertificateRepository(db),
		journal:     repository.NewJournalRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.profile, cfg)
	s.content = service.NewContentService(repos.subject, repos.material, repos.goal, repos.question, repos.challenge, repos.progress)
	s.scoring = service.NewScoringService(repos.profile)

	renderer := render.NewCertificateRenderer(cfg.Certificate.FontPath)
	s.certificate = service.NewCertificateService(repos.certificate, repos.goal, repos.progress, repos.user, repos.subject, renderer, s.storage)

	s.completion = service.NewCompletionService(repos.goal, repos.progress, s.scoring, s.certificate)
	s.profile = service.NewProfileService(repos.profile, repos.user, s.storage, rdb)
	s.journal = service.NewJournalService(repos.journal, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		subject:     controller.NewSubjectController(s.content),
		completion:  controller.NewCompletionController(s.completion),
		certificate: controller.NewCertificateController(s.certificate),
		profile:     controller.NewProfileController(s.profile),
		journal:     controller.NewJournalController(s.journal),
		admin:       controller.NewAdminController(s.content),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The leaderboard cache is the only redis consumer; run without it.
		logger.Log.Warn("Redis unavailable, leaderboard caching disabled", zap.Error(err))
		rdb = nil
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("studybuddy", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
