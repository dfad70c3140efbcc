package app

import (
	"fmt"
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"
	"jobboard_backend/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := migrate(gormDB); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}
	if err := seedAdminUser(gormDB, cfg); err != nil {
		logger.Fatal("failed to seed admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	logger.Info("storage initialized", "type", cfg.Storage.Type)

	wsManager := ws.NewManager()
	go wsManager.Run()
	wsHandler := ws.NewHandler(wsManager)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, wsManager)
	appHandlers := handlers.NewAppHandlers(serviceContainer, storageInstance, validator.New())

	ginRouter := initializeGinRouter(cfg, serviceContainer.AuthService)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage, wsManager *ws.Manager) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	sessionRepo := repositories.NewSessionRepository(gormDB)
	whitelistRepo := repositories.NewWhitelistRepository(gormDB)
	postingRepo := repositories.NewPostingRepository(gormDB)
	archiveRepo := repositories.NewArchiveRepository(gormDB)
	cvRepo := repositories.NewCVRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	uploadRepo := repositories.NewUploadRepository(gormDB)
	fileHashRepo := repositories.NewFileHashRepository(gormDB)

	var emailProvider email.Provider = email.NoopProvider{}
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		logger.Info("smtp mail provider enabled", "host", cfg.Email.SMTPHost)
	}

	notifier := services.MultiNotifier{
		email.NewModerationNotifier(emailProvider, cfg.Admin.NotifyEmail),
		wsManager,
	}

	return &services.ServiceContainer{
		AuthService: services.NewAuthService(userRepo, sessionRepo, whitelistRepo, services.AdminCredentials{
			Username:     cfg.Admin.Username,
			PasswordHash: cfg.Admin.PasswordHash,
		}),
		PostingService:     services.NewPostingService(postingRepo, archiveRepo, notifier),
		MatchingService:    services.NewMatchingService(cvRepo, postingRepo),
		WhitelistService:   services.NewWhitelistService(whitelistRepo),
		CVService:          services.NewCVService(cvRepo, fileHashRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, postingRepo),
		UploadService:      services.NewUploadService(uploadRepo, cvRepo, fileHashRepo, storageInstance),
	}
}

func initializeGinRouter(cfg *config.Config, authService services.AuthService) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	r.Use(middleware.SessionAuth(authService))

	return r
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.WhitelistEntry{},
		&models.Posting{},
		&models.ArchivedPosting{},
		&models.CV{},
		&models.Application{},
		&models.Upload{},
		&models.FileHash{},
	)
}
