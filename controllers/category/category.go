package categorycontroller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"github.com/usmanrimi/abb-gallery-ease-sub001/validation"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Slug        string `json:"slug" binding:"required"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Slug        *string `json:"slug"`
}

// categoryView is a category annotated with its resolved visibility flag.
type categoryView struct {
	models.Category
	ComingSoon bool `json:"coming_soon"`
}

// fetchAll is the shared refetch: all categories in creation order, each
// annotated with the resolved coming-soon flag.
func fetchAll(db *gorm.DB) ([]categoryView, error) {
	var categories []models.Category
	if err := db.Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	var rows []models.CategorySetting
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	explicit := make(map[string]bool, len(rows))
	for _, row := range rows {
		explicit[row.Slug] = row.ComingSoon
	}

	views := make([]categoryView, 0, len(categories))
	for _, cat := range categories {
		flag, ok := explicit[cat.Slug]
		if !ok {
			flag = models.DefaultComingSoon(cat.Slug)
		}
		views = append(views, categoryView{Category: cat, ComingSoon: flag})
	}
	return views, nil
}

// GET /categories (storefront) and GET /admin/categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		views, err := fetchAll(db)
		if err != nil {
			log.Println("❌ Failed to fetch categories:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "categories": views})
	}
}

// POST /admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := validation.Description(input.Description); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		category := models.Category{
			Name:        input.Name,
			Description: input.Description,
			Slug:        strings.ToLower(strings.TrimSpace(input.Slug)),
		}
		if err := db.Create(&category).Error; err != nil {
			log.Println("❌ Failed to create category:", err)
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Failed to create category (slug must be unique)"})
			return
		}

		views, err := fetchAll(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Created but refetch failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "categories": views})
	}
}

// PUT /admin/categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
			return
		}

		var input UpdateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			if err := validation.Description(*input.Description); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			updates["description"] = *input.Description
		}
		if input.Slug != nil {
			updates["slug"] = strings.ToLower(strings.TrimSpace(*input.Slug))
		}

		if len(updates) > 0 {
			if err := db.Model(&category).Updates(updates).Error; err != nil {
				log.Println("❌ Failed to update category:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update category"})
				return
			}
		}

		views, err := fetchAll(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Updated but refetch failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "categories": views})
	}
}

// DELETE /admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			log.Println("❌ Failed to delete category:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete category"})
			return
		}

		views, err := fetchAll(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Deleted but refetch failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "categories": views})
	}
}
