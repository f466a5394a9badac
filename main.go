package main

import (
	"context"
	"log"
	"net/http"

	"movie-discovery-backend/config"
	"movie-discovery-backend/controllers"
	"movie-discovery-backend/data_access"
	"movie-discovery-backend/logger"
	"movie-discovery-backend/metrics"
	"movie-discovery-backend/middleware"
	"movie-discovery-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func setupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	slogger := logger.New(cfg.Env)
	slogger.Info("configuration loaded", "env", cfg.Env)

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Close(context.Background())

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	// Set JWT secret for middleware
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Register prometheus collectors
	metrics.Init()

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	movieService := services.NewMovieService(cfg.TMDBAPIKey, cfg.TMDBBaseURL)
	collectionsService := services.NewCollectionsService()

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	movieController := controllers.NewMovieController(movieService, slogger)
	userController := controllers.NewUserController(userRepo, collectionsService)

	// Setup Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recover())
	r.Use(setupCORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	// Health check endpoint
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Prometheus endpoint
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.POST("/logout", authController.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), authController.Me)
		}

		// Movie metadata routes, public
		movies := api.Group("/movies")
		{
			movies.GET("/popular", movieController.GetPopular)
			movies.GET("/search", movieController.Search)
			movies.GET("/trending/:timeWindow", movieController.GetTrending)
			movies.GET("/top-rated", movieController.GetTopRated)
			movies.GET("/upcoming", movieController.GetUpcoming)
			movies.GET("/now-playing", movieController.GetNowPlaying)
			movies.GET("/genres", movieController.GetGenres)
			movies.GET("/genre/:genreId", movieController.GetByGenre)
			movies.GET("/:id", movieController.GetDetails)
		}

		// User collection routes, protected
		users := api.Group("/users")
		users.Use(middleware.AuthMiddleware())
		{
			users.GET("/favorites", userController.GetFavorites)
			users.POST("/favorites", userController.AddFavorite)
			users.DELETE("/favorites/:movieId", userController.RemoveFavorite)

			users.GET("/watchlist", userController.GetWatchlist)
			users.POST("/watchlist", userController.AddToWatchlist)
			users.DELETE("/watchlist/:movieId", userController.RemoveFromWatchlist)

			users.GET("/reviews", userController.GetReviews)
			users.POST("/reviews", userController.UpsertReview)
			users.DELETE("/reviews/:movieId", userController.DeleteReview)

			users.PUT("/profile", userController.UpdateProfile)
		}
	}

	slogger.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
