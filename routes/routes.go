package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"supplier-backend/controllers"
	"supplier-backend/middleware"
	"supplier-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public and admin route groups.
func SetupRouter(
	ac *controllers.AuthController,
	sc *controllers.SupplierController,
	hc *controllers.HistoryController,
	nc *controllers.AnnouncementController,
	sessions *services.SessionRegistry,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.TokenHeader, "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// public
		api.POST("/login", ac.Login)
		api.GET("/search", sc.Search)
		api.GET("/announcements", nc.ListActive)

		// logout needs a live token to know what to revoke
		api.POST("/logout", middleware.AuthRequired(sessions), ac.Logout)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(sessions))
		{
			admin.GET("/suppliers", sc.List)
			admin.POST("/suppliers", sc.Create)
			admin.PATCH("/suppliers/:id", sc.Update)
			admin.DELETE("/suppliers/:id", sc.Delete)

			admin.GET("/history", hc.List)
			admin.DELETE("/history/:id", hc.Delete)

			admin.GET("/announcements", nc.List)
			admin.POST("/announcements", nc.Create)
			admin.PATCH("/announcements/:id", nc.Update)
			admin.DELETE("/announcements/:id", nc.Delete)
		}
	}

	return r
}
