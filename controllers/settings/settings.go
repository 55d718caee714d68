package settingsController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsInput struct {
	PaymentMode     *string `json:"payment_mode"`
	CheckoutEnabled *bool   `json:"checkout_enabled"`
	SignupEnabled   *bool   `json:"signup_enabled"`
	ChatEnabled     *bool   `json:"chat_enabled"`
	Currency        *string `json:"currency"`
	OrderPrefix     *string `json:"order_prefix"`
}

// GET /settings — public: the storefront reads its toggles here.
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := models.LoadSiteSettings(db)
		if err != nil {
			log.Println("❌ Failed to load settings:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
	}
}

// PUT /super-admin/settings
func UpdateSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		settings, err := models.LoadSiteSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load settings"})
			return
		}

		if input.PaymentMode != nil {
			settings.PaymentMode = *input.PaymentMode
		}
		if input.CheckoutEnabled != nil {
			settings.CheckoutEnabled = *input.CheckoutEnabled
		}
		if input.SignupEnabled != nil {
			settings.SignupEnabled = *input.SignupEnabled
		}
		if input.ChatEnabled != nil {
			settings.ChatEnabled = *input.ChatEnabled
		}
		if input.Currency != nil {
			settings.Currency = *input.Currency
		}
		if input.OrderPrefix != nil {
			settings.OrderPrefix = *input.OrderPrefix
		}
		settings.ID = models.SiteSettingsID

		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&settings).Error
		if err != nil {
			log.Println("❌ Failed to save settings:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save settings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
	}
}
