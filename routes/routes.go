package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/usmanrimi/abb-gallery-ease-sub001/baas"
	"github.com/usmanrimi/abb-gallery-ease-sub001/cart"
	"github.com/usmanrimi/abb-gallery-ease-sub001/config"
	"github.com/usmanrimi/abb-gallery-ease-sub001/session"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, user,
// admin and super-admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *session.Store, client *baas.Client, carts *cart.Manager, cfg *config.Config) {
	// Public storefront + auth routes (no middleware)
	SetupAuthRoutes(r, db, store, client)
	SetupPublicRoutes(r, db)

	// Customer routes (JWT-protected)
	SetupUserRoutes(r, db, store, carts)

	// Back-office routes (JWT + role guard)
	SetupAdminRoutes(r, db, store, cfg)
	SetupSuperAdminRoutes(r, db, store, client)
}
