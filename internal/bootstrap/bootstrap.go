package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/yigit/schedulocity/internal/app/analytics"
	appControllers "github.com/yigit/schedulocity/internal/app/controllers"
	appRepos "github.com/yigit/schedulocity/internal/app/repositories"
	appRoutes "github.com/yigit/schedulocity/internal/app/routes"
	appServices "github.com/yigit/schedulocity/internal/app/services"
	"github.com/yigit/schedulocity/internal/config"
	"github.com/yigit/schedulocity/internal/db"
	appMiddleware "github.com/yigit/schedulocity/internal/middleware"
	pkgAuth "github.com/yigit/schedulocity/internal/pkg/auth"
	"github.com/yigit/schedulocity/internal/pkg/email"
	"github.com/yigit/schedulocity/internal/pkg/filestorage"
	"github.com/yigit/schedulocity/internal/pkg/helpers"
	"github.com/yigit/schedulocity/internal/pkg/logger"
	"github.com/yigit/schedulocity/internal/pkg/validation"
	"github.com/yigit/schedulocity/internal/pkg/websocket"
	"github.com/yigit/schedulocity/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store       *db.MemoryDB
	Repos       *appRepos.Repositories
	JWTService  *pkgAuth.JWTService
	Hub         *websocket.Hub
	Metrics     *appMiddleware.Metrics
	FileStorage *filestorage.LocalStorage

	AuthService         appServices.AuthService
	SessionService      appServices.SessionService
	DashboardService    appServices.DashboardService
	FacultyService      appServices.FacultyService
	SubjectService      appServices.SubjectService
	ResourceService     appServices.ResourceService
	TimetableService    appServices.TimetableService
	AvailabilityService appServices.AvailabilityService
	LeaveService        appServices.LeaveService
	ProfileService      appServices.ProfileService
	ReportService       appServices.ReportService
	SystemService       appServices.SystemService
	DataService         appServices.DataService

	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger

	cleanup []func() error
}

// OnClose registers fn to run on Close
func (d *Dependencies) OnClose(fn func() error) {
	d.cleanup = append(d.cleanup, fn)
}

// Close releases resources registered with OnClose, last first
func (d *Dependencies) Close() error {
	var firstErr error
	for i := len(d.cleanup) - 1; i >= 0; i-- {
		if err := d.cleanup[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	d.cleanup = nil
	return firstErr
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ParseConfig(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore creates the in-memory store and fills it with the generated data.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.MemoryDB, error) {
	store := db.NewMemoryDB()
	opts := seed.Options{
		RandomSeed: cfg.Seed.RandomSeed,
		BcryptCost: cfg.Auth.BcryptCost,
	}
	if err := seed.CreateDefaultData(ctx, store, opts, lgr); err != nil {
		return nil, fmt.Errorf("failed to seed data store: %w", err)
	}
	return store, nil
}

// SetupSessionStore opens the configured session repository. The returned
// func closes its connection, if any.
func SetupSessionStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.SessionRepository, func() error, error) {
	ttl := helpers.ParseDuration(cfg.Session.TTL, 30*time.Minute)

	if strings.ToLower(cfg.Session.Store) != "redis" {
		lgr.Info().Dur("ttl", ttl).Msg("Using in-memory session store")
		return appRepos.NewMemorySessionRepository(ttl), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Session.RedisAddr,
		Password: cfg.Session.RedisPassword,
		DB:       cfg.Session.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Session.RedisAddr).Msg("Failed to ping redis")
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	lgr.Info().Str("addr", cfg.Session.RedisAddr).Dur("ttl", ttl).Msg("Using redis session store")

	return appRepos.NewRedisSessionRepository(client, ttl, logger.Component("sessions")), client.Close, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
// The websocket hub and audit logger run until ctx is done.
func BuildDependencies(
	ctx context.Context,
	cfg *config.Config,
	store *db.MemoryDB,
	sessionRepo appRepos.SessionRepository,
	reg *prometheus.Registry,
	lgr zerolog.Logger,
) (*Dependencies, error) {
	deps := &Dependencies{Store: store, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store, sessionRepo)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.Path, lgr.With().Str("component", "storage").Logger())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.Auth.JWTSecret,
		AccessTokenExp: helpers.ParseDuration(cfg.Auth.AccessTokenExpiration, 30*time.Minute),
		TokenIssuer:    cfg.Auth.Issuer,
	})

	deps.Hub = websocket.NewHub(lgr.With().Str("component", "hub").Logger())
	go deps.Hub.Run(ctx)
	if cfg.Security.AuditLogging {
		websocket.NewAuditLogger(deps.Hub, lgr.With().Str("component", "audit").Logger()).Start(ctx)
	}

	deps.Metrics = appMiddleware.NewMetrics(reg)

	notifier := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr.With().Str("component", "email").Logger())

	provider := analytics.NewComputedProvider(
		deps.Repos.TimetableRepository,
		deps.Repos.ResourceRepository,
		deps.Repos.LeaveRequestRepository,
	)

	// Initialize services
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		sessionRepo,
		deps.JWTService,
		deps.Hub,
		appServices.AuthOptions{
			LoginDelay: helpers.ParseDuration(cfg.Auth.LoginDelay, time.Second),
			BcryptCost: cfg.Auth.BcryptCost,
		},
		lgr,
	)
	deps.SessionService = appServices.NewSessionService(sessionRepo, deps.Hub, lgr)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos, provider, lgr)
	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository, lgr)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository, deps.Repos.FacultyRepository, lgr)
	deps.ResourceService = appServices.NewResourceService(deps.Repos.ResourceRepository, lgr)
	deps.TimetableService = appServices.NewTimetableService(deps.Repos.TimetableRepository, lgr)
	deps.AvailabilityService = appServices.NewAvailabilityService(deps.Repos.FacultyRepository, deps.Repos.TimetableRepository, provider, lgr)
	deps.LeaveService = appServices.NewLeaveService(deps.Repos.LeaveRequestRepository, deps.Repos.FacultyRepository, notifier, lgr)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.UserRepository, deps.Repos.FacultyRepository, provider, lgr)
	deps.ReportService = appServices.NewReportService(deps.Repos, provider, lgr)
	deps.SystemService = appServices.NewSystemService(systemSettings(cfg), store, sessionRepo, strings.ToLower(cfg.Session.Store), lgr)
	deps.DataService = appServices.NewDataService(store, deps.FileStorage, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.SessionService, lgr)

	deps.Controllers = appRoutes.Controllers{
		Auth:          appControllers.NewAuthController(deps.AuthService, deps.SessionService, deps.Metrics, lgr),
		Dashboard:     appControllers.NewDashboardController(deps.DashboardService, deps.ReportService),
		Directory:     appControllers.NewDirectoryController(deps.FacultyService, deps.SubjectService, deps.ResourceService, lgr),
		Timetable:     appControllers.NewTimetableController(deps.TimetableService),
		Faculty:       appControllers.NewFacultyController(deps.AvailabilityService, deps.LeaveService, deps.ProfileService, lgr),
		LeaveApproval: appControllers.NewLeaveApprovalController(deps.LeaveService, lgr),
		System:        appControllers.NewSystemController(deps.SystemService, deps.DataService, lgr),
		Events:        websocket.NewHandler(deps.Hub, cfg.Server.AllowedOrigins, lgr.With().Str("component", "websocket").Logger()),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterCustomValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr.With().Str("component", "http").Logger()))
	router.Use(deps.Metrics.Middleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	if len(cfg.Server.AllowedOrigins) == 0 || slices.Contains(cfg.Server.AllowedOrigins, "*") {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition"}
	router.Use(cors.New(corsConfig))

	sessionStore := cookie.NewStore([]byte(cfg.Session.CookieSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(helpers.ParseDuration(cfg.Session.TTL, 30*time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   strings.ToLower(cfg.Server.Mode) == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(cfg.Session.CookieName, sessionStore))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	return router, nil
}

// NewRegistry returns a Prometheus registry with the Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
