package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	// --- 导入内部包 ---
	httpHandler "job-board/internal/handler/http"
	gormpersistence "job-board/internal/infra/persistence/gorm"
	"job-board/internal/infra/setup"
	"job-board/internal/middleware"
	"job-board/internal/password"
	"job-board/internal/repository"
	"job-board/internal/service"
	"job-board/internal/token"
)

// App 结构体包含应用的所有组件和配置
type App struct {
	Config     *Config
	Log        *logrus.Logger
	DB         *gorm.DB
	HttpServer *http.Server
}

// repositories 汇总四个仓库，具体实现由 DB_DRIVER 决定
type repositories struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
	jobs      repository.JobRepository
	apps      repository.ApplicationRepository
}

// NewApp 加载配置并创建应用
func NewApp() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		// 使用标准输出记录启动时错误，因为 logrus 可能还未完全配置
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}
	return NewAppWithConfig(cfg)
}

// NewAppWithConfig 根据给定配置初始化应用的所有组件
func NewAppWithConfig(cfg *Config) (*App, error) {
	// 1. 初始化 Logger
	log := NewLogger(cfg)
	log.Info("Configuration loaded successfully")

	// 2. 初始化存储
	log.Infof("Initializing store (driver: %s)...", cfg.DB.Driver)
	repos, db, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("Repositories initialized")

	// 3. 初始化 Services
	hasher := password.NewBcrypt(cfg.BcryptCost)
	tokens, err := token.NewService(token.StaticSecret(cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	owners := service.NewOwnershipResolver(repos.jobs, repos.apps)
	authService := service.NewAuthService(repos.companies, repos.users, hasher, tokens)
	companyService := service.NewCompanyService(repos.companies, repos.users, repos.jobs, hasher, owners)
	userService := service.NewUserService(repos.users, repos.companies, hasher, owners)
	jobService := service.NewJobService(repos.jobs, owners)
	appService := service.NewApplicationService(repos.apps, repos.jobs, owners)
	log.Info("Services initialized")

	// 4. 初始化 Gin Engine 和路由
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(LoggerMiddleware(log))
	router.Use(CORSMiddleware(cfg.CORSAllowedOrigin))

	httpHandler.RegisterRoutes(router, middleware.NewGuards(tokens), httpHandler.Handlers{
		Auth:         httpHandler.NewAuthHandler(authService),
		Companies:    httpHandler.NewCompanyHandler(companyService),
		Users:        httpHandler.NewUserHandler(userService),
		Jobs:         httpHandler.NewJobHandler(jobService),
		Applications: httpHandler.NewApplicationHandler(appService),
	})
	log.Info("Router setup complete")

	// 5. 初始化 HTTP Server
	httpServer := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{Config: cfg, Log: log, DB: db, HttpServer: httpServer}, nil
}

// NewLogger 按环境创建 logger，并让包级 logrus 使用相同的格式和级别
func NewLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)

	// service 层直接使用包级 logrus
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(logLevel)
	logrus.SetOutput(os.Stdout)

	log.Infof("Logger initialized (Level: %s, Format: %T)", logLevel.String(), log.Formatter)
	return log
}

func openStore(cfg *Config) (repositories, *gorm.DB, error) {
	db, err := setup.InitDB(cfg.DB)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("failed to init DB: %w", err)
	}
	if err := setup.MigrateDB(db); err != nil {
		return repositories{}, nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	return repositories{
		companies: gormpersistence.NewGormCompanyRepository(db),
		users:     gormpersistence.NewGormUserRepository(db),
		jobs:      gormpersistence.NewGormJobRepository(db),
		apps:      gormpersistence.NewGormApplicationRepository(db),
	}, db, nil
}

// Start 在后台 goroutine 中启动 HTTP 服务器
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown 优雅地关闭应用
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	// 1. 优雅关闭 HTTP 服务器，等待进行中的请求完成
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	// 2. 关闭数据库连接池
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.Log.Errorf("Error closing database connection: %v", err)
			} else {
				a.Log.Info("Database connection closed.")
			}
		}
	}

	a.Log.Info("Application shutdown complete.")
}

// LoggerMiddleware 创建一个 Gin 中间件用于记录请求日志
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next() // 处理请求
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
			"request_id":  middleware.RequestIDFrom(c),
		})
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			entry = entry.WithField("error", errs.String())
		}

		// 区分状态码记录日志级别
		switch {
		case statusCode >= 500:
			entry.Error("Server error")
		case statusCode >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request handled")
		}
	}
}

// CORSMiddleware 允许单一来源的跨域请求，预检请求直接返回 204
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
