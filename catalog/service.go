package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"

	"qr-menu-api/models"

	"gorm.io/gorm"
)

// Service is the single authority for catalog reads and writes. Every
// owner-facing operation resolves the caller's restaurant first and walks
// the menu→category→item chain before touching anything.
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+[1-9][0-9]{0,3}[0-9]{10}$`)
	hexRe   = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// internal wraps a storage failure: log the detail, return a stable message
func internal(op string, err error) error {
	log.Printf("catalog: %s failed: %v", op, err)
	return fmt.Errorf("%s: storage failure", op)
}

// ── Ownership chain ─────────────────────────────────────────────────────────

func restaurantOf(tx *gorm.DB, ownerID string) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := tx.Where("owner_id = ?", ownerID).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, internal("restaurant lookup", err)
	}
	return &r, nil
}

func menuOf(tx *gorm.DB, ownerID, menuID string) (*models.Restaurant, *models.Menu, error) {
	r, err := restaurantOf(tx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	var m models.Menu
	if err := tx.Where("id = ? AND restaurant_id = ?", menuID, r.ID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, internal("menu lookup", err)
	}
	return r, &m, nil
}

func categoryOf(tx *gorm.DB, menu *models.Menu, categoryID string) (*models.Category, error) {
	var cat models.Category
	if err := tx.Where("id = ? AND menu_id = ?", categoryID, menu.ID).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, internal("category lookup", err)
	}
	return &cat, nil
}

func itemOf(tx *gorm.DB, menu *models.Menu, itemID string) (*models.Item, error) {
	var item models.Item
	if err := tx.Where("id = ? AND menu_id = ?", itemID, menu.ID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, internal("item lookup", err)
	}
	return &item, nil
}

// ── Restaurant ──────────────────────────────────────────────────────────────

type RestaurantInput struct {
	Name        string
	Cuisine     string
	Address     string
	Phone       string
	Email       string
	Description string
	ThemeColor  string
	Rating      *float64
}

func validateRestaurantFields(in RestaurantInput) error {
	if in.Name == "" {
		return invalidf("name is required")
	}
	if in.Email != "" && !emailRe.MatchString(in.Email) {
		return invalidf("email %q is not a valid address", in.Email)
	}
	if in.Phone != "" && !phoneRe.MatchString(in.Phone) {
		return invalidf("phone must be +<country code> followed by 10 digits")
	}
	if in.ThemeColor != "" && !hexRe.MatchString(in.ThemeColor) {
		return invalidf("theme color must be a #RRGGBB hex string")
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		return invalidf("rating must be between 0 and 5")
	}
	return nil
}

// CreateRestaurant onboards the caller's one restaurant. A second attempt
// for the same owner is a conflict, enforced here rather than by the schema.
func (s *Service) CreateRestaurant(ctx context.Context, ownerID string, in RestaurantInput) (*models.Restaurant, error) {
	if err := validateRestaurantFields(in); err != nil {
		return nil, err
	}

	var r *models.Restaurant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Restaurant{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
			return internal("restaurant count", err)
		}
		if count > 0 {
			return conflictf("owner already has a restaurant")
		}

		r = &models.Restaurant{
			OwnerID:     ownerID,
			Name:        in.Name,
			Cuisine:     in.Cuisine,
			Address:     in.Address,
			Phone:       in.Phone,
			Email:       in.Email,
			Description: in.Description,
			ThemeColor:  in.ThemeColor,
			Plan:        models.PlanFree,
			IsActive:    true,
		}
		if r.ThemeColor == "" {
			r.ThemeColor = "#000000"
		}
		if in.Rating != nil {
			r.Rating = *in.Rating
		}
		if err := tx.Create(r).Error; err != nil {
			return internal("restaurant create", err)
		}
		if err := tx.Model(&models.User{}).Where("id = ?", ownerID).
			Update("has_restaurant", true).Error; err != nil {
			return internal("owner marker update", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) GetRestaurant(ctx context.Context, ownerID string) (*models.Restaurant, error) {
	return restaurantOf(s.db.WithContext(ctx), ownerID)
}

type RestaurantPatch struct {
	Name        *string
	Cuisine     *string
	Address     *string
	Phone       *string
	Email       *string
	Description *string
	ThemeColor  *string
	LogoURL     *string
	LogoFileID  *string
	IsActive    *bool
}

// UpdateRestaurant applies a partial update; only provided fields change.
func (s *Service) UpdateRestaurant(ctx context.Context, ownerID string, patch RestaurantPatch) (*models.Restaurant, error) {
	r, err := restaurantOf(s.db.WithContext(ctx), ownerID)
	if err != nil {
		return nil, err
	}

	update := map[string]interface{}{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, invalidf("name is required")
		}
		update["name"] = *patch.Name
	}
	if patch.Cuisine != nil {
		update["cuisine"] = *patch.Cuisine
	}
	if patch.Address != nil {
		update["address"] = *patch.Address
	}
	if patch.Phone != nil {
		if *patch.Phone != "" && !phoneRe.MatchString(*patch.Phone) {
			return nil, invalidf("phone must be +<country code> followed by 10 digits")
		}
		update["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		if *patch.Email != "" && !emailRe.MatchString(*patch.Email) {
			return nil, invalidf("email %q is not a valid address", *patch.Email)
		}
		update["email"] = *patch.Email
	}
	if patch.Description != nil {
		update["description"] = *patch.Description
	}
	if patch.ThemeColor != nil {
		if !hexRe.MatchString(*patch.ThemeColor) {
			return nil, invalidf("theme color must be a #RRGGBB hex string")
		}
		update["theme_color"] = *patch.ThemeColor
	}
	if patch.LogoURL != nil {
		update["logo_url"] = *patch.LogoURL
	}
	if patch.LogoFileID != nil {
		update["logo_file_id"] = *patch.LogoFileID
	}
	if patch.IsActive != nil {
		update["is_active"] = *patch.IsActive
	}

	if len(update) > 0 {
		if err := s.db.WithContext(ctx).Model(r).Updates(update).Error; err != nil {
			return nil, internal("restaurant update", err)
		}
	}
	return r, nil
}
