// main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"go-officials-portal/controllers"
	"go-officials-portal/logger"
	"go-officials-portal/middleware"
	"go-officials-portal/services"
	"go-officials-portal/websocket"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("main: no .env file loaded")
	}
	logger.SetLogLevel(os.Getenv("APP_ENV"))

	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	// Initialize the router
	router := gin.Default()

	// Add this route for health checks
	router.GET("/health", controllers.Health)

	// Read configuration from environment variables
	applicationURL := os.Getenv("APPLICATION_URL")
	if applicationURL == "" {
		applicationURL = "http://localhost:8080" // Default to localhost for local testing
	}

	websocketURL := os.Getenv("WEBSOCKET_URL")
	if websocketURL == "" {
		websocketURL = "ws://localhost:8080/activity-feed" // Default to localhost for local testing
	}

	controllers.SetConfig(applicationURL, websocketURL)

	// Initialize session store
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "secret" // Local default; set a real secret in production
	}
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("portalsession", store))

	// Build the demo store; entity data reseeds on every start, settings
	// and the active identity come back from the snapshot file.
	snapshotPath := os.Getenv("PORTAL_STATE_FILE")
	if snapshotPath == "" {
		snapshotPath = "./data/portal_state.json"
	}
	demoStore := services.NewDemoStore(snapshotPath)
	demoStore.SetActivityHook(websocket.BroadcastActivity)

	// Controllers
	authController := controllers.NewAuthController(demoStore)
	portalController := controllers.NewPortalController(demoStore)
	requestController := controllers.NewRequestController(demoStore)
	personaController := controllers.NewPersonaController(demoStore)
	adminController := controllers.NewAdminController(demoStore)
	sudoController := controllers.NewSudoController(demoStore)

	// Public routes
	router.GET("/login", authController.ShowLoginPage)
	router.POST("/login", authController.PerformLogin)
	router.GET("/logout", controllers.Logout)

	// Protected routes
	protected := router.Group("/", middleware.AuthRequired)
	{
		protected.GET("/api/navigation", portalController.Navigation)
		protected.GET("/api/state", portalController.State)
		protected.GET("/api/events", portalController.Events)
		protected.GET("/api/requests", portalController.Requests)
		protected.GET("/api/assignments", portalController.Assignments)
		protected.GET("/api/users", portalController.Users)
		protected.GET("/api/announcements", portalController.Announcements)
		protected.GET("/api/activity", portalController.Activity)
		protected.GET("/api/events/:id/qrcode", portalController.EventQRCode)

		protected.POST("/api/requests", requestController.Submit)
		protected.POST("/api/persona", personaController.SetPersona)
		protected.POST("/api/role", personaController.SetRole)

		protected.GET("/activity-feed", func(c *gin.Context) {
			websocket.ServeFeed(c.Writer, c.Request)
		})

		protected.POST("/sudo/unlock", sudoController.Unlock)
	}

	// Elevated routes: request resolution and admin settings
	elevated := router.Group("/", middleware.AuthRequired, middleware.ElevatedRequired(demoStore))
	{
		elevated.POST("/api/requests/:id/approve", requestController.Approve)
		elevated.POST("/api/requests/:id/decline", requestController.Decline)
		elevated.POST("/api/request-batches/approve", requestController.ApproveBatch)
		elevated.POST("/api/request-batches/decline", requestController.DeclineBatch)

		elevated.POST("/api/flags/:name/toggle", adminController.ToggleFlag)
		elevated.POST("/api/branding", adminController.SetBranding)
		elevated.POST("/api/rate-limits", adminController.SetRateLimits)
		elevated.POST("/api/events/:id/notes", adminController.UpdateNotes)
		elevated.POST("/api/sample-data", adminController.GenerateSample)
		elevated.POST("/api/log", adminController.LogAction)
	}

	// Sudo routes: destructive whole-store operations
	sudo := router.Group("/", middleware.AuthRequired, middleware.SudoRequired())
	{
		sudo.POST("/api/wipe", sudoController.Wipe)
		sudo.POST("/api/reseed", sudoController.Reseed)
		sudo.POST("/api/users/:id/role", sudoController.UpdateUserRole)
	}

	// Start the feed broadcast loop
	go websocket.HandleMessages()

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
