package models

import (
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
)

type OrderModel struct {
	ID                string             `gorm:"primaryKey;type:uuid"`
	ServiceID         string             `gorm:"type:text;not null;index:idx_order_service"`
	AuthorID          string             `gorm:"type:text;not null;index:idx_order_author"`
	CustomerID        string             `gorm:"type:text;not null;index:idx_order_customer"`
	Status            domain.OrderStatus `gorm:"type:text;not null;index:idx_order_status"`
	AuthorConfirmed   bool               `gorm:"not null;default:false"`
	CustomerConfirmed bool               `gorm:"not null;default:false"`
	Message           string             `gorm:"type:text"`
	CreatedAt         time.Time          `gorm:"not null;index:idx_order_created_at"`
	AcceptedAt        *time.Time
	CompletedAt       *time.Time
	UpdatedAt         time.Time
}

func (OrderModel) TableName() string {
	return "deal_orders"
}
