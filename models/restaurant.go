package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plan identifies a subscription tier
type Plan string

const (
	PlanFree       Plan = "FREE"
	PlanProMonthly Plan = "PRO_MONTHLY"
	PlanProYearly  Plan = "PRO_YEARLY"
)

type Restaurant struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	OwnerID      string     `json:"owner_id" gorm:"index;not null"`
	Owner        User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name         string     `json:"name" gorm:"not null"`
	Cuisine      string     `json:"cuisine"`
	Address      string     `json:"address"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	Description  string     `json:"description"`
	LogoURL      string     `json:"logo_url"`
	LogoFileID   string     `json:"logo_file_id"`
	ThemeColor   string     `json:"theme_color" gorm:"default:'#000000'"`
	Rating       float64    `json:"rating" gorm:"default:0"`
	Plan         Plan       `json:"plan" gorm:"not null;default:'FREE'"`
	PlanStartsAt *time.Time `json:"plan_starts_at"`
	PlanEndsAt   *time.Time `json:"plan_ends_at"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	Menus        []Menu     `json:"menus,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
