package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRecord is an append-only history row for every verified payment
type PaymentRecord struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	RestaurantID string    `json:"restaurant_id" gorm:"index;not null"`
	OrderID      string    `json:"order_id" gorm:"not null"`
	PaymentID    string    `json:"payment_id" gorm:"not null"`
	Plan         Plan      `json:"plan" gorm:"not null"`
	Amount       int64     `json:"amount"` // minor currency units
	Currency     string    `json:"currency" gorm:"default:'INR'"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *PaymentRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
