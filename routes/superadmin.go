package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanrimi/abb-gallery-ease-sub001/auth"
	"github.com/usmanrimi/abb-gallery-ease-sub001/baas"
	settingsController "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/settings"
	userControllers "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/user"
	"github.com/usmanrimi/abb-gallery-ease-sub001/middleware"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"github.com/usmanrimi/abb-gallery-ease-sub001/session"
	"gorm.io/gorm"
)

// SetupSuperAdminRoutes registers the "/super-admin/*" endpoints, plus the
// privileged user-creation route which additionally needs the server API key.
func SetupSuperAdminRoutes(r *gin.Engine, db *gorm.DB, store *session.Store, client *baas.Client) {
	superGroup := r.Group("/super-admin")
	superGroup.Use(middleware.ValidateToken(store), middleware.RequireRole(store, models.RoleSuperAdmin))
	{
		superGroup.GET("/dashboard", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"dashboard": "super_admin"})
		})

		superGroup.GET("/users", userControllers.GetAllUsers(db))
		superGroup.PUT("/settings", settingsController.UpdateSettings(db))

		// Privileged user creation (wrapped plain handler, API-key gated)
		superGroup.POST("/users", middleware.ValidateAPIKey, func(c *gin.Context) {
			auth.CreateUserHandler(c.Writer, c.Request, db, client)
		})
	}
}
