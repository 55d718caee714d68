package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanrimi/abb-gallery-ease-sub001/cart"
	cartControllers "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/cart"
	chatControllers "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/chat"
	orderControllers "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/order"
	userControllers "github.com/usmanrimi/abb-gallery-ease-sub001/controllers/user"
	"github.com/usmanrimi/abb-gallery-ease-sub001/middleware"
	"github.com/usmanrimi/abb-gallery-ease-sub001/session"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all customer-facing endpoints. Requires a valid
// token; no specific role, so users with an unresolved role still get in.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, store *session.Store, carts *cart.Manager) {
	// The customer landing page the guard funnels everyone else to.
	r.GET("/dashboard", middleware.ValidateToken(store), middleware.RequireRole(store, ""), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"dashboard": "customer"})
	})

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(store), middleware.RequireRole(store, ""))
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/profile", userControllers.GetProfile(db))
		userGroup.PUT("/profile", userControllers.UpdateProfile(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(carts))
			cartGroup.POST("/", cartControllers.AddItem(carts))
			cartGroup.PUT("/:item_id", cartControllers.UpdateQuantity(carts))
			cartGroup.DELETE("/:item_id", cartControllers.RemoveItem(carts))
			cartGroup.DELETE("/", cartControllers.ClearCart(carts))
		}

		// ──────────────── Orders ────────────────
		userGroup.POST("/orders", orderControllers.PlaceOrderHandler(db, carts))
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db))

		// ──────────────── Support Chat ────────────────
		chatGroup := userGroup.Group("/chat")
		{
			chatGroup.GET("/messages", chatControllers.GetMessages(db))
			chatGroup.POST("/messages", chatControllers.SendMessage(db, false))
			chatGroup.GET("/ws", chatControllers.ChatWebSocketHandler)
		}
	}
}
