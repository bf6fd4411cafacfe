package main

import (
	"log"
	"time"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/harborview/marina-api/internal/auth"
	"github.com/harborview/marina-api/internal/config"
	"github.com/harborview/marina-api/internal/database"
	apierrors "github.com/harborview/marina-api/internal/errors"
	"github.com/harborview/marina-api/internal/handlers"
	"github.com/harborview/marina-api/internal/middleware"
	"github.com/harborview/marina-api/internal/repository"
	"github.com/harborview/marina-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   3600, // the session only carries the OAuth state nonce
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions("marina_session", store))

	// Token verification against the identity provider's key set
	jwks := auth.NewJWKSCache("https://"+cfg.Auth0Domain+"/.well-known/jwks.json", 15*time.Minute)
	verifier := auth.NewVerifier(jwks, cfg.Auth0ClientID, "https://"+cfg.Auth0Domain+"/")

	// Initialize repositories and services
	db := database.GetDB()
	boatRepo := repository.NewBoatRepository(db)
	loadRepo := repository.NewLoadRepository(db)
	userRepo := repository.NewUserRepository(db)

	boatService := services.NewBoatService(boatRepo, loadRepo)
	loadService := services.NewLoadService(loadRepo)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg.Auth0Domain, cfg.Auth0ClientID, cfg.Auth0ClientSecret, cfg.BaseURL, verifier, userService)
	boatHandler := handlers.NewBoatHandler(boatService, cfg.BaseURL)
	loadHandler := handlers.NewLoadHandler(loadService, cfg.BaseURL)
	userHandler := handlers.NewUserHandler(userService)

	// Unknown methods on known paths answer 405, not 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		apierrors.MethodNotAllowed(c)
	})

	// Pages and OAuth flow
	r.GET("/", authHandler.Home)
	r.GET("/login", authHandler.LoginRedirect)
	r.POST("/login", authHandler.LoginPassword)
	r.GET("/callback", authHandler.Callback)
	r.POST("/callback", authHandler.Callback)

	requireToken := middleware.RequireToken(verifier)
	resolveUser := middleware.ResolveUser(userRepo)
	requireOwner := middleware.RequireBoatOwner(boatRepo)
	jsonBody := middleware.RequireJSONBody()
	jsonAccept := middleware.RequireJSONAccept()

	// Boat routes (bearer-authenticated)
	boats := r.Group("/boats")
	{
		boats.POST("", jsonBody, jsonAccept, requireToken, resolveUser, boatHandler.Create)
		boats.GET("", jsonAccept, requireToken, resolveUser, boatHandler.List)
		boats.PATCH("/:boat_id", jsonBody, jsonAccept, requireToken, resolveUser, requireOwner, boatHandler.Update)
		boats.PUT("/:boat_id", jsonBody, jsonAccept, requireToken, resolveUser, requireOwner, boatHandler.Replace)
		boats.DELETE("/:boat_id", requireToken, resolveUser, requireOwner, boatHandler.Delete)
		boats.PATCH("/:boat_id/:load_id", requireToken, resolveUser, requireOwner, boatHandler.AttachLoad)
		boats.DELETE("/:boat_id/:load_id", requireToken, resolveUser, requireOwner, boatHandler.DetachLoad)
	}

	// Load routes (no bearer authentication)
	loads := r.Group("/loads")
	{
		loads.POST("", jsonBody, jsonAccept, loadHandler.Create)
		loads.GET("", jsonAccept, loadHandler.List)
		loads.PATCH("/:load_id", jsonBody, jsonAccept, loadHandler.Update)
		loads.PUT("/:load_id", jsonBody, jsonAccept, loadHandler.Replace)
		loads.DELETE("/:load_id", loadHandler.Delete)
	}

	// User routes
	r.GET("/users", jsonAccept, userHandler.List)

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
