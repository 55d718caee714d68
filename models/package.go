package models

import "time"

type Package struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID    uint           `gorm:"index;not null" json:"category_id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `json:"description"`
	HasClasses    bool           `json:"has_classes"`
	StartingPrice float64        `json:"starting_price"`
	Hidden        bool           `json:"hidden"`
	Classes       []PackageClass `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"classes"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// PackageClass is a priced variant of a package. The class list is replaced
// wholesale on package update, with SortOrder assigned from array position.
type PackageClass struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	PackageID   uint    `gorm:"index;not null" json:"package_id"`
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	SortOrder   int     `gorm:"not null;default:0" json:"sort_order"`
}
