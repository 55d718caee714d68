package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanrimi/abb-gallery-ease-sub001/config"
	categorycontroller "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/category"
	chatControllers "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/chat"
	orderControllers "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/order"
	pkgControllers "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/pkg"
	uploadController "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/upload"
	"github.com/usmanrimi/abb-gallery-ease-sub001/middleware"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"github.com/usmanrimi/abb-gallery-ease-sub001/session"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints for the ops role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, store *session.Store, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(store), middleware.RequireRole(store, models.RoleAdminOps))
	{
		adminGroup.GET("/dashboard", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"dashboard": "admin_ops"})
		})

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", categorycontroller.GetAllCategories(db))
			categoryAdmin.POST("", categorycontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", categorycontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", categorycontroller.DeleteCategory(db))
		}
		adminGroup.PUT("/category-visibility/:slug", categorycontroller.SetVisibility(db))

		// ─────────── Package Management ───────────
		packageAdmin := adminGroup.Group("/packages")
		{
			packageAdmin.GET("", pkgControllers.GetAllPackages(db))
			packageAdmin.POST("", pkgControllers.CreatePackage(db))
			packageAdmin.PUT("/:id", pkgControllers.UpdatePackage(db))
			packageAdmin.DELETE("/:id", pkgControllers.DeletePackage(db))
			packageAdmin.GET("/export-excel", pkgControllers.ExportPackagesToExcel(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── Uploads & Chat ───────────
		adminGroup.POST("/uploads", uploadController.UploadImage(cfg.UploadsDir))
		adminGroup.POST("/chat/messages", chatControllers.SendMessage(db, true))
	}
}
