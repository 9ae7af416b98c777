// file: controllers/router_test.go
package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"go-officials-portal/controllers"
	"go-officials-portal/middleware"
	"go-officials-portal/services"
)

// setupTestRouter mirrors the wiring in main.go against a fresh store with
// persistence disabled.
func setupTestRouter(store *services.DemoStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cookieStore := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", cookieStore))

	authController := controllers.NewAuthController(store)
	portalController := controllers.NewPortalController(store)
	requestController := controllers.NewRequestController(store)
	personaController := controllers.NewPersonaController(store)
	adminController := controllers.NewAdminController(store)
	sudoController := controllers.NewSudoController(store)

	router.GET("/health", controllers.Health)
	router.GET("/login", authController.ShowLoginPage)
	router.POST("/login", authController.PerformLogin)
	router.GET("/logout", controllers.Logout)

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

		protected.POST("/sudo/unlock", sudoController.Unlock)
	}

	elevated := router.Group("/", middleware.AuthRequired, middleware.ElevatedRequired(store))
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

	sudo := router.Group("/", middleware.AuthRequired, middleware.SudoRequired())
	{
		sudo.POST("/api/wipe", sudoController.Wipe)
		sudo.POST("/api/reseed", sudoController.Reseed)
		sudo.POST("/api/users/:id/role", sudoController.UpdateUserRole)
	}

	return router
}

// loginAs signs the test session in as a persona and returns the session
// cookie for follow-up requests.
func loginAs(t *testing.T, router *gin.Engine, persona string) string {
	t.Helper()

	form := url.Values{"persona": {persona}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "login as %q should succeed: %s", persona, w.Body.String())

	sessionCookie := w.Header().Get("Set-Cookie")
	require.NotEmpty(t, sessionCookie, "login should set a session cookie")
	return sessionCookie
}

// postForm issues a form POST with the given session cookie.
func postForm(router *gin.Engine, path, sessionCookie string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// postJSON issues a JSON POST with the given session cookie.
func postJSON(router *gin.Engine, path, sessionCookie, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// get issues a GET with the given session cookie.
func get(router *gin.Engine, path, sessionCookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
