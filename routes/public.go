package routes

import (
	"github.com/gin-gonic/gin"
	categorycontroller "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/category"
	pkgControllers "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/pkg"
	settingsController "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/settings"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the unauthenticated storefront reads.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/settings", settingsController.GetSettings(db))
	r.GET("/categories", categorycontroller.GetAllCategories(db))
	r.GET("/categories/:slug/visibility", categorycontroller.GetVisibility(db))
	r.GET("/categories/:slug/packages", pkgControllers.GetVisiblePackages(db))
}
