package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "aerocode/docs" // swagger spec
	"aerocode/internal/adapter/http/handlers"
	"aerocode/internal/adapter/http/middleware"
	"aerocode/internal/adapter/persistence"
	"aerocode/internal/config"
	"aerocode/internal/domain/policy"
	"aerocode/internal/infrastructure/auth"
	"aerocode/internal/infrastructure/database"
	"aerocode/internal/infrastructure/logger"
	"aerocode/internal/infrastructure/metrics"
	"aerocode/internal/infrastructure/reports"
	"aerocode/internal/usecase"
	"aerocode/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies is everything the router needs, built once at startup.
type Dependencies struct {
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	Tokens     *auth.TokenManager
	Identity   usecase.IIdentityUseCase
	Production usecase.IProductionUseCase
	Audit      usecase.IAuditUseCase
}

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	deps, err := Build(context.Background(), cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to build dependencies", zap.Error(err))
	}

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exited")
}

// Build wires storage, policy, audit, identity and production. A failed
// bootstrap is logged and startup continues.
func Build(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (*Dependencies, error) {
	repos, err := persistence.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	accessPolicy, err := buildPolicy(cfg.Policy)
	if err != nil {
		return nil, fmt.Errorf("failed to load access policy: %w", err)
	}

	renderer, err := buildRenderer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to configure reports: %w", err)
	}

	m := metrics.New()
	audit := usecase.NewAuditUseCase(repos.Audit, accessPolicy, zapLogger).OnRecord(m.ObserveAudit)

	identity := usecase.NewIdentityUseCase(repos.Employees, audit, accessPolicy, zapLogger)
	if err := identity.Bootstrap(ctx, cfg.Bootstrap.AdminPassword); err != nil {
		zapLogger.Error("Bootstrap failed", zap.Error(err))
	}

	production := usecase.NewProductionUseCase(repos.Aircraft, repos.Employees, audit, accessPolicy, renderer, zapLogger)

	return &Dependencies{
		Logger:     zapLogger,
		Metrics:    m,
		Tokens:     auth.NewTokenManager(cfg.JWT),
		Identity:   identity,
		Production: production,
		Audit:      audit,
	}, nil
}

func NewRouter(deps *Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	authHandler := handlers.NewAuthHandler(deps.Identity, deps.Tokens)
	aircraftHandler := handlers.NewAircraftHandler(deps.Production)
	partHandler := handlers.NewPartHandler(deps.Production)
	stageHandler := handlers.NewStageHandler(deps.Production)
	testHandler := handlers.NewTestHandler(deps.Production)
	userHandler := handlers.NewUserHandler(deps.Identity)
	auditHandler := handlers.NewAuditHandler(deps.Audit)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1, handlers.NewHealthHandler())
	v1.POST(PathLogin, authHandler.Login)

	// Rotas autenticadas
	protected := v1.Group("", middleware.JWTAuth(deps.Tokens, deps.Identity))
	addAuthRoutes(protected, authHandler)
	addAircraftRoutes(protected, aircraftHandler, partHandler, stageHandler, testHandler)
	addUserRoutes(protected, userHandler)
	addAuditRoutes(protected, auditHandler)

	return router
}

func setMiddlewares(router *gin.Engine, deps *Dependencies) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		deps.Logger.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.Timing(deps.Metrics))
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.CORS())
}

func buildPolicy(cfg config.PolicyConfig) (*policy.Enforcer, error) {
	if cfg.ModelPath != "" && cfg.PolicyPath != "" {
		return policy.NewFromFiles(cfg.ModelPath, cfg.PolicyPath)
	}
	return policy.New()
}

func buildRenderer(ctx context.Context, cfg *config.Config) (interfaces.IReportRenderer, error) {
	if cfg.Reports.Driver != config.ReportsS3 {
		return reports.NewFileRenderer(cfg.Reports.Dir), nil
	}
	awsCfg, err := database.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	client := reports.NewS3Client(awsCfg, cfg.Reports)
	return reports.NewS3Renderer(client, cfg.Reports.S3Bucket, cfg.Reports.S3Prefix), nil
}
