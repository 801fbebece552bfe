package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Menu struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	RestaurantID string     `json:"restaurant_id" gorm:"index;not null"`
	Name         string     `json:"name" gorm:"not null"`
	Description  string     `json:"description"`
	Slug         string     `json:"slug" gorm:"uniqueIndex;not null"`
	IsPublished  bool       `json:"is_published" gorm:"default:false"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	DisplayOrder int        `json:"display_order" gorm:"default:0"`
	Categories   []Category `json:"categories,omitempty" gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
	Items        []Item     `json:"items,omitempty" gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

type Category struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	MenuID       string    `json:"menu_id" gorm:"index;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	SortOrder    int       `json:"sort_order" gorm:"default:0"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// StringList is stored as a JSON array in a TEXT column. A NULL or empty
// column reads back as an empty list, never nil-with-surprises.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported ingredients column type %T", src)
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

type Item struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	MenuID        string     `json:"menu_id" gorm:"index;not null"`
	CategoryID    *string    `json:"category_id" gorm:"index"`
	Name          string     `json:"name" gorm:"not null"`
	Description   string     `json:"description"`
	Price         float64    `json:"price" gorm:"not null"`
	EstimatedTime *int       `json:"estimated_time_minutes"`
	Ingredients   StringList `json:"ingredients" gorm:"type:text"`
	ImageURL      string     `json:"image_url"`
	ImageFileID   string     `json:"image_file_id"`
	IsVegetarian  bool       `json:"is_vegetarian" gorm:"default:false"`
	IsVegan       bool       `json:"is_vegan" gorm:"default:false"`
	IsGlutenFree  bool       `json:"is_gluten_free" gorm:"default:false"`
	IsSpicy       bool       `json:"is_spicy" gorm:"default:false"`
	IsAvailable   bool       `json:"is_available" gorm:"default:true"`
	SortOrder     int        `json:"sort_order" gorm:"default:0"`
	DisplayOrder  int        `json:"display_order" gorm:"default:0"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
