package categorycontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VisibilityInput struct {
	ComingSoon *bool `json:"coming_soon" binding:"required"`
}

// ResolveComingSoon is the visibility rule the storefront depends on: the
// explicit settings row wins; without one, the documented slug fallback.
func ResolveComingSoon(db *gorm.DB, slug string) (bool, error) {
	var row models.CategorySetting
	err := db.First(&row, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultComingSoon(slug), nil
	}
	if err != nil {
		return false, err
	}
	return row.ComingSoon, nil
}

// GET /categories/:slug/visibility
func GetVisibility(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		comingSoon, err := ResolveComingSoon(db, slug)
		if err != nil {
			log.Println("❌ Failed to resolve visibility:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to resolve visibility"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "slug": slug, "coming_soon": comingSoon})
	}
}

// PUT /admin/category-visibility/:slug
func SetVisibility(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var input VisibilityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		row := models.CategorySetting{Slug: slug, ComingSoon: *input.ComingSoon}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			UpdateAll: true,
		}).Create(&row).Error
		if err != nil {
			log.Println("❌ Failed to save visibility:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save visibility"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "slug": slug, "coming_soon": row.ComingSoon})
	}
}
