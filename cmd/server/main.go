package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	_ "devfolio/docs" // swagger docs

	"devfolio/internal/auth"
	"devfolio/internal/cache"
	"devfolio/internal/config"
	"devfolio/internal/db"
	"devfolio/internal/handler"
	"devfolio/internal/model"
	"devfolio/internal/repository"
	"devfolio/internal/router"
	"devfolio/internal/service"
)

// @title Devfolio API
// @version 1.0
// @description Portfolio site backend with JWT authentication, portfolio and contact management.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.PortfolioItem{},
		&model.ContactMessage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	portfolioRepo := repository.NewPortfolioRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	portfolioService := service.NewPortfolioService(portfolioRepo, cacheClient)
	contactService := service.NewContactService(contactRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	contactHandler := handler.NewContactHandler(contactService)
	userHandler := handler.NewUserHandler(userService)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		cfg,
		jwtService,
		userRepo,
		authHandler,
		portfolioHandler,
		contactHandler,
		userHandler,
	)

	log.Printf("Environment: %s", cfg.Env)
	log.Printf("Health check: http://localhost:%s/api/health", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
