package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// SiteSettingsID is the fixed key of the single settings row.
const SiteSettingsID = "site_settings"

type SiteSettings struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	PaymentMode     string    `gorm:"type:VARCHAR(20);default:'manual'" json:"payment_mode"`
	CheckoutEnabled bool      `gorm:"default:true" json:"checkout_enabled"`
	SignupEnabled   bool      `gorm:"default:true" json:"signup_enabled"`
	ChatEnabled     bool      `gorm:"default:true" json:"chat_enabled"`
	Currency        string    `gorm:"type:VARCHAR(10);default:'NGN'" json:"currency"`
	OrderPrefix     string    `gorm:"type:VARCHAR(10);default:'GG'" json:"order_prefix"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LoadSiteSettings reads the single settings row; an absent row reads as
// the defaults rather than an error.
func LoadSiteSettings(db *gorm.DB) (SiteSettings, error) {
	var settings SiteSettings
	err := db.First(&settings, "id = ?", SiteSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultSiteSettings(), nil
	}
	if err != nil {
		return DefaultSiteSettings(), err
	}
	return settings, nil
}

// DefaultSiteSettings is what a missing settings row reads as.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:              SiteSettingsID,
		PaymentMode:     "manual",
		CheckoutEnabled: true,
		SignupEnabled:   true,
		ChatEnabled:     true,
		Currency:        "NGN",
		OrderPrefix:     "GG",
	}
}
