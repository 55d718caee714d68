package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanrimi/abb-gallery-ease-sub001/cart"
	"github.com/usmanrimi/abb-gallery-ease-sub001/validation"
)

type AddItemInput struct {
	ProductID string  `json:"product_id" binding:"required"`
	VariantID string  `json:"variant_id"`
	Name      string  `json:"name" binding:"required"`
	Image     string  `json:"image"`
	UnitPrice float64 `json:"unit_price" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Note      string  `json:"note"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GET /user/cart
func GetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := carts.For(c.GetString("user_id"))
		c.JSON(http.StatusOK, gin.H{
			"items": store.Items(),
			"total": store.Total(),
			"count": store.Count(),
		})
	}
}

// POST /user/cart
func AddItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := validation.Note(input.Note); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		store := carts.For(c.GetString("user_id"))
		item := store.Add(cart.Item{
			ProductID: input.ProductID,
			VariantID: input.VariantID,
			Name:      input.Name,
			Image:     input.Image,
			UnitPrice: input.UnitPrice,
			Quantity:  input.Quantity,
			Note:      input.Note,
		})
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /user/cart/:item_id
func UpdateQuantity(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
			return
		}

		store := carts.For(c.GetString("user_id"))
		store.UpdateQuantity(c.Param("item_id"), input.Quantity)
		c.JSON(http.StatusOK, gin.H{"items": store.Items(), "total": store.Total(), "count": store.Count()})
	}
}

// DELETE /user/cart/:item_id
func RemoveItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := carts.For(c.GetString("user_id"))
		store.Remove(c.Param("item_id"))
		c.JSON(http.StatusOK, gin.H{"items": store.Items(), "total": store.Total(), "count": store.Count()})
	}
}

// DELETE /user/cart
func ClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := carts.For(c.GetString("user_id"))
		store.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
