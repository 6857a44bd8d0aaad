package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rahibvk/buyandsellmarketplace/internal/config"
	"github.com/rahibvk/buyandsellmarketplace/internal/database"
	"github.com/rahibvk/buyandsellmarketplace/internal/handler"
	"github.com/rahibvk/buyandsellmarketplace/internal/middleware"
	"github.com/rahibvk/buyandsellmarketplace/internal/repository"
	"github.com/rahibvk/buyandsellmarketplace/internal/security"
	"github.com/rahibvk/buyandsellmarketplace/internal/service"
	"github.com/rahibvk/buyandsellmarketplace/pkg/logger"
	"github.com/rahibvk/buyandsellmarketplace/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize logger
	zapLogger, err := logger.New(cfg.Server.GinMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	// 3. Initialize database connection
	db := database.Connect(cfg)
	database.Migrate(db)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize security primitives
	hasher := security.NewPasswordHasher(cfg.Auth.BcryptCost)
	codec := security.NewTokenCodec(cfg.JWT.Secret)

	// 6. Initialize services
	authService := service.NewAuthService(userRepo, sessionRepo, auditRepo, hasher, codec, cfg.JWT, zapLogger)
	userService := service.NewUserService(userRepo)
	moderationService := service.NewModerationService(userRepo, authService, auditRepo, zapLogger)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authn := middleware.NewAuthenticator(codec, userRepo)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(moderationService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "buyandsellmarketplace",
		})
	})

	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Profile routes (authenticated)
	users := v1.Group("/users")
	users.Use(authn.RequireAuth())
	{
		users.GET("/me", userHandler.Me)
		users.PATCH("/me", userHandler.UpdateMe)
	}

	// Moderation routes (admin only)
	admin := v1.Group("/admin")
	admin.Use(authn.RequireAuth(), authn.RequireAdmin())
	{
		admin.POST("/users/:id/ban", adminHandler.BanUser)
		admin.POST("/users/:id/unban", adminHandler.UnbanUser)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
