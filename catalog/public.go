package catalog

import (
	"context"
	"errors"
	"strconv"

	"qr-menu-api/models"

	"gorm.io/gorm"
)

// otherSortKey pins the synthetic bucket after every real category.
const otherSortKey = 1 << 20

// PublicItem is the customer-facing shape of an available item.
type PublicItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         string   `json:"price"`
	EstimatedTime *int     `json:"estimated_time_minutes,omitempty"`
	Ingredients   []string `json:"ingredients"`
	ImageURL      string   `json:"image_url,omitempty"`
	IsVegetarian  bool     `json:"is_vegetarian"`
	IsVegan       bool     `json:"is_vegan"`
	IsGlutenFree  bool     `json:"is_gluten_free"`
	IsSpicy       bool     `json:"is_spicy"`
}

type PublicCategory struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	SortOrder    int          `json:"sort_order"`
	DisplayOrder int          `json:"display_order"`
	Items        []PublicItem `json:"items"`
}

type PublicRestaurant struct {
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
	Address     string `json:"address"`
	LogoURL     string `json:"logo_url,omitempty"`
	ThemeColor  string `json:"theme_color"`
}

type PublicMenuView struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Slug            string           `json:"slug"`
	Restaurant      PublicRestaurant `json:"restaurant"`
	Categories      []PublicCategory `json:"categories"`
	TotalItems      int              `json:"total_items"`
	TotalCategories int              `json:"total_categories"`
}

func publicItem(it models.Item) PublicItem {
	ingredients := []string(it.Ingredients)
	if ingredients == nil {
		ingredients = []string{}
	}
	return PublicItem{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		Price:         strconv.FormatFloat(it.Price, 'f', 2, 64),
		EstimatedTime: it.EstimatedTime,
		Ingredients:   ingredients,
		ImageURL:      it.ImageURL,
		IsVegetarian:  it.IsVegetarian,
		IsVegan:       it.IsVegan,
		IsGlutenFree:  it.IsGlutenFree,
		IsSpicy:       it.IsSpicy,
	}
}

// PublicMenu renders a published menu for an unauthenticated visitor.
// Unpublished, inactive and nonexistent menus are indistinguishable: all
// come back ErrNotFound.
func (s *Service) PublicMenu(ctx context.Context, menuID string) (*PublicMenuView, error) {
	db := s.db.WithContext(ctx)

	var m models.Menu
	if err := db.Where("id = ? AND is_published = ? AND is_active = ?", menuID, true, true).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, internal("public menu lookup", err)
	}

	var r models.Restaurant
	if err := db.Where("id = ? AND is_active = ?", m.RestaurantID, true).
		First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, internal("public restaurant lookup", err)
	}

	var cats []models.Category
	if err := db.Where("menu_id = ? AND is_active = ?", m.ID, true).
		Order("display_order asc, sort_order asc, name asc").
		Find(&cats).Error; err != nil {
		return nil, internal("public category list", err)
	}

	var items []models.Item
	if err := db.Where("menu_id = ? AND is_available = ?", m.ID, true).
		Order("display_order asc, sort_order asc, name asc").
		Find(&items).Error; err != nil {
		return nil, internal("public item list", err)
	}

	// Single pass: bucket items by category, anything without an active
	// category lands in the trailing synthetic bucket.
	view := &PublicMenuView{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Slug:        m.Slug,
		Restaurant: PublicRestaurant{
			Name:        r.Name,
			Cuisine:     r.Cuisine,
			Description: r.Description,
			Address:     r.Address,
			LogoURL:     r.LogoURL,
			ThemeColor:  r.ThemeColor,
		},
		Categories: make([]PublicCategory, 0, len(cats)+1),
	}

	buckets := make(map[string]int, len(cats))
	for _, cat := range cats {
		buckets[cat.ID] = len(view.Categories)
		view.Categories = append(view.Categories, PublicCategory{
			ID:           cat.ID,
			Name:         cat.Name,
			Description:  cat.Description,
			SortOrder:    cat.SortOrder,
			DisplayOrder: cat.DisplayOrder,
			Items:        []PublicItem{},
		})
	}

	var other []PublicItem
	for _, it := range items {
		if it.CategoryID != nil {
			if idx, ok := buckets[*it.CategoryID]; ok {
				view.Categories[idx].Items = append(view.Categories[idx].Items, publicItem(it))
				continue
			}
		}
		other = append(other, publicItem(it))
	}
	if len(other) > 0 {
		view.Categories = append(view.Categories, PublicCategory{
			ID:           "other",
			Name:         "Other Items",
			SortOrder:    otherSortKey,
			DisplayOrder: otherSortKey,
			Items:        other,
		})
	}

	view.TotalCategories = len(view.Categories)
	view.TotalItems = len(items)
	return view, nil
}
