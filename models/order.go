package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by the shop
	OrderStatusDelivered OrderStatus = "delivered" // customer received the gift
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before delivery
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderRef    string      `gorm:"unique;not null" json:"order_ref"`
	UserID      string      `gorm:"index;not null" json:"user_id"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Currency    string      `json:"currency"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderItem snapshots the cart line at checkout time.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   string  `json:"product_id"`
	VariantID   string  `json:"variant_id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	Note        string  `json:"note"`
}
