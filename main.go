package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Kirtan82004/VisionCare/checkout"
	"github.com/Kirtan82004/VisionCare/routes"
	"github.com/Kirtan82004/VisionCare/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET is not set")
	}

	// Session stores: one in-memory store per session, swept on a timer.
	// Nothing survives a restart.
	manager := store.NewManager(sessionTTL())
	registry := checkout.NewRegistry()

	stop := make(chan struct{})
	defer close(stop)
	go manager.StartSweeper(10*time.Minute, stop, registry.DropAll)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, manager, registry)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// sessionTTL reads SESSION_TTL_HOURS, defaulting to 24h.
func sessionTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}
