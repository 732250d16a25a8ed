package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"financas-api/config"
	"financas-api/jobs"
	"financas-api/middleware"
	"financas-api/routes"
	"financas-api/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("No .env file found, using environment variables")
	}
	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	utils.Logger.Info("Database connected successfully")

	if err := config.RunMigrations(db); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to run migrations")
	}

	if err := config.SeedDefaults(db); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to seed defaults")
	}

	sessionCleanup := jobs.StartSessionCleanup(db)
	defer sessionCleanup.Stop()

	router := gin.New()
	router.Use(gin.Recovery())

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		utils.Logger.WithFields(map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		}).Info("Request handled")
	})

	router.Use(middleware.RateLimiter())

	api := router.Group("/api")
	{
		routes.SetupAuthRoutes(api, db)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			routes.SetupFinanceRoutes(protected, db)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.Logger.WithField("port", port).Info("Server starting")
	if err := router.Run(":" + port); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to start server")
	}
}
