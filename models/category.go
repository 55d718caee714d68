package models

import "time"

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	Packages    []Package `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"packages,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategorySetting is the explicit per-slug visibility row. When no row
// exists for a slug the storefront falls back to DefaultComingSoon.
type CategorySetting struct {
	Slug       string `gorm:"primaryKey" json:"slug"`
	ComingSoon bool   `json:"coming_soon"`
	UpdatedAt  time.Time
}

// DefaultComingSoon is the documented fallback used when a category has no
// settings row: these two slugs launch as "coming soon", everything else
// is live. Storefront visibility depends on this staying exact.
func DefaultComingSoon(slug string) bool {
	return slug == "seasonal" || slug == "haihuwa"
}
