package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanrimi/abb-gallery-ease-sub001/auth"
	"github.com/usmanrimi/abb-gallery-ease-sub001/baas"
	"github.com/usmanrimi/abb-gallery-ease-sub001/middleware"
	"github.com/usmanrimi/abb-gallery-ease-sub001/session"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, store *session.Store, client *baas.Client) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/sign-up", auth.SignUp(db, client))
		authGroup.POST("/sign-in", auth.SignIn(store, client))

		// The sign-in page the guard redirects to.
		authGroup.GET("/sign-in", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":  "Sign in required",
				"redirect": c.Query("redirect"),
			})
		})

		protected := authGroup.Group("")
		protected.Use(middleware.ValidateToken(store))
		{
			protected.POST("/sign-out", auth.SignOut(store, client))
			protected.POST("/refresh-role", auth.RefreshRole(store))
			protected.GET("/session", auth.GetSession(store))
		}
	}
}
