package pkgControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"github.com/usmanrimi/abb-gallery-ease-sub001/validation"
	"gorm.io/gorm"
)

type ClassInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type PackageInput struct {
	CategoryID    uint         `json:"category_id" binding:"required"`
	Name          string       `json:"name" binding:"required"`
	Description   string       `json:"description"`
	HasClasses    bool         `json:"has_classes"`
	StartingPrice float64      `json:"starting_price"`
	Hidden        bool         `json:"hidden"`
	Classes       []ClassInput `json:"classes"`
}

type UpdatePackageInput struct {
	CategoryID    *uint         `json:"category_id"`
	Name          *string       `json:"name"`
	Description   *string       `json:"description"`
	HasClasses    *bool         `json:"has_classes"`
	StartingPrice *float64      `json:"starting_price"`
	Hidden        *bool         `json:"hidden"`
	Classes       *[]ClassInput `json:"classes"`
}

// fetchAll refetches the full package list in creation order, classes sorted
// by their explicit order.
func fetchAll(db *gorm.DB) ([]models.Package, error) {
	var packages []models.Package
	err := db.
		Preload("Classes", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") }).
		Order("created_at ASC").
		Find(&packages).Error
	return packages, err
}

// GET /admin/packages
func GetAllPackages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		packages, err := fetchAll(db)
		if err != nil {
			log.Println("❌ Failed to fetch packages:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch packages"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "packages": packages})
	}
}

// GET /categories/:slug/packages — storefront listing, hidden ones excluded.
func GetVisiblePackages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var category models.Category
		if err := db.First(&category, "slug = ?", slug).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
			return
		}

		var packages []models.Package
		err := db.
			Preload("Classes", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") }).
			Where("category_id = ? AND hidden = ?", category.ID, false).
			Order("created_at ASC").
			Find(&packages).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch packages"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "packages": packages})
	}
}

// POST /admin/packages
func CreatePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := validation.Description(input.Description); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		pkg := models.Package{
			CategoryID:    input.CategoryID,
			Name:          input.Name,
			Description:   input.Description,
			HasClasses:    input.HasClasses,
			StartingPrice: input.StartingPrice,
			Hidden:        input.Hidden,
			Classes:       buildClasses(0, input.Classes),
		}
		if err := db.Create(&pkg).Error; err != nil {
			log.Println("❌ Failed to create package:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create package"})
			return
		}

		packages, err := fetchAll(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Created but refetch failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "packages": packages})
	}
}

// PUT /admin/packages/:id
//
// When a class list is supplied, the existing child rows are deleted and the
// new list inserted with sort order matching array position. Both steps run
// in one transaction, so readers never observe the half-replaced state.
func UpdatePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var pkg models.Package
		if err := db.First(&pkg, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Package not found"})
			return
		}

		var input UpdatePackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.CategoryID != nil {
			updates["category_id"] = *input.CategoryID
		}
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
		if input.HasClasses != nil {
			updates["has_classes"] = *input.HasClasses
		}
		if input.StartingPrice != nil {
			updates["starting_price"] = *input.StartingPrice
		}
		if input.Hidden != nil {
			updates["hidden"] = *input.Hidden
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if len(updates) > 0 {
				if err := tx.Model(&pkg).Updates(updates).Error; err != nil {
					return err
				}
			}
			if input.Classes != nil {
				if err := tx.Where("package_id = ?", pkg.ID).Delete(&models.PackageClass{}).Error; err != nil {
					return err
				}
				classes := buildClasses(pkg.ID, *input.Classes)
				if len(classes) > 0 {
					if err := tx.Create(&classes).Error; err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			log.Println("❌ Failed to update package:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update package"})
			return
		}

		packages, err := fetchAll(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Updated but refetch failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "packages": packages})
	}
}

// DELETE /admin/packages/:id
func DeletePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var pkg models.Package
		if err := db.First(&pkg, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Package not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("package_id = ?", pkg.ID).Delete(&models.PackageClass{}).Error; err != nil {
				return err
			}
			return tx.Delete(&pkg).Error
		})
		if err != nil {
			log.Println("❌ Failed to delete package:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete package"})
			return
		}

		packages, err := fetchAll(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Deleted but refetch failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "packages": packages})
	}
}

// buildClasses assigns zero-based sort order from array position.
func buildClasses(packageID uint, inputs []ClassInput) []models.PackageClass {
	classes := make([]models.PackageClass, 0, len(inputs))
	for i, in := range inputs {
		classes = append(classes, models.PackageClass{
			PackageID:   packageID,
			Name:        in.Name,
			Price:       in.Price,
			Description: in.Description,
			SortOrder:   i,
		})
	}
	return classes
}
