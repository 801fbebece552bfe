package catalog

import (
	"context"
	"math"

	"qr-menu-api/models"

	"gorm.io/gorm"
)

type ItemInput struct {
	Name          string
	Description   string
	Price         float64
	CategoryID    string
	EstimatedTime *int
	Ingredients   []string
	IsVegetarian  bool
	IsVegan       bool
	IsGlutenFree  bool
	IsSpicy       bool
	IsAvailable   *bool
}

func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}

func validateItemFields(in ItemInput) error {
	if in.Name == "" {
		return invalidf("name is required")
	}
	if in.Price < 0 {
		return invalidf("price must be non-negative")
	}
	if in.CategoryID == "" {
		return invalidf("categoryId is required")
	}
	if in.EstimatedTime != nil && *in.EstimatedTime <= 0 {
		return invalidf("estimated time must be a positive number of minutes")
	}
	return nil
}

// CreateItem adds an item to the menu under the given category. The
// category must belong to the same menu; sort order is assigned max+1 per
// menu and display order starts equal to it.
func (s *Service) CreateItem(ctx context.Context, ownerID, menuID string, in ItemInput) (*models.Item, error) {
	if err := validateItemFields(in); err != nil {
		return nil, err
	}

	var item *models.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, m, err := menuOf(tx, ownerID, menuID)
		if err != nil {
			return err
		}
		cat, err := categoryOf(tx, m, in.CategoryID)
		if err != nil {
			return err
		}
		order, err := nextSortOrder(tx, &models.Item{}, m.ID)
		if err != nil {
			return err
		}

		item = &models.Item{
			MenuID:        m.ID,
			CategoryID:    &cat.ID,
			Name:          in.Name,
			Description:   in.Description,
			Price:         roundPrice(in.Price),
			EstimatedTime: in.EstimatedTime,
			Ingredients:   models.StringList(in.Ingredients),
			IsVegetarian:  in.IsVegetarian,
			IsVegan:       in.IsVegan,
			IsGlutenFree:  in.IsGlutenFree,
			IsSpicy:       in.IsSpicy,
			IsAvailable:   true,
			SortOrder:     order,
			DisplayOrder:  order,
		}
		if item.Ingredients == nil {
			item.Ingredients = models.StringList{}
		}
		if in.IsAvailable != nil {
			item.IsAvailable = *in.IsAvailable
		}
		if err := tx.Create(item).Error; err != nil {
			return internal("item create", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns the menu's items grouped the way the owner dashboard
// shows them: category order first, then item order, then age.
func (s *Service) ListItems(ctx context.Context, ownerID, menuID string) ([]models.Item, error) {
	_, m, err := menuOf(s.db.WithContext(ctx), ownerID, menuID)
	if err != nil {
		return nil, err
	}
	var items []models.Item
	if err := s.db.WithContext(ctx).Model(&models.Item{}).
		Select("items.*").
		Joins("LEFT JOIN categories ON categories.id = items.category_id").
		Where("items.menu_id = ?", m.ID).
		Order("categories.sort_order asc, items.sort_order asc, items.created_at asc").
		Find(&items).Error; err != nil {
		return nil, internal("item list", err)
	}
	return items, nil
}

type ItemPatch struct {
	IsAvailable  *bool
	SortOrder    *int
	DisplayOrder *int
}

// UpdateItem replaces the item's editable fields after full validation.
// A changed category must still belong to the same menu.
func (s *Service) UpdateItem(ctx context.Context, ownerID, menuID, itemID string, in ItemInput) (*models.Item, error) {
	if err := validateItemFields(in); err != nil {
		return nil, err
	}

	var item *models.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, m, err := menuOf(tx, ownerID, menuID)
		if err != nil {
			return err
		}
		item, err = itemOf(tx, m, itemID)
		if err != nil {
			return err
		}
		cat, err := categoryOf(tx, m, in.CategoryID)
		if err != nil {
			return err
		}

		ingredients := models.StringList(in.Ingredients)
		if ingredients == nil {
			ingredients = models.StringList{}
		}
		update := map[string]interface{}{
			"name":           in.Name,
			"description":    in.Description,
			"price":          roundPrice(in.Price),
			"category_id":    cat.ID,
			"estimated_time": in.EstimatedTime,
			"ingredients":    ingredients,
			"is_vegetarian":  in.IsVegetarian,
			"is_vegan":       in.IsVegan,
			"is_gluten_free": in.IsGlutenFree,
			"is_spicy":       in.IsSpicy,
		}
		if in.IsAvailable != nil {
			update["is_available"] = *in.IsAvailable
		}
		if err := tx.Model(item).Updates(update).Error; err != nil {
			return internal("item update", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// PatchItem flips availability or reorders without touching the rest of
// the item, so no name or price revalidation happens here.
func (s *Service) PatchItem(ctx context.Context, ownerID, menuID, itemID string, patch ItemPatch) (*models.Item, error) {
	_, m, err := menuOf(s.db.WithContext(ctx), ownerID, menuID)
	if err != nil {
		return nil, err
	}
	item, err := itemOf(s.db.WithContext(ctx), m, itemID)
	if err != nil {
		return nil, err
	}

	update := map[string]interface{}{}
	if patch.IsAvailable != nil {
		update["is_available"] = *patch.IsAvailable
	}
	if patch.SortOrder != nil {
		update["sort_order"] = *patch.SortOrder
	}
	if patch.DisplayOrder != nil {
		update["display_order"] = *patch.DisplayOrder
	}

	if len(update) > 0 {
		if err := s.db.WithContext(ctx).Model(item).Updates(update).Error; err != nil {
			return nil, internal("item patch", err)
		}
	}
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, ownerID, menuID, itemID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, m, err := menuOf(tx, ownerID, menuID)
		if err != nil {
			return err
		}
		item, err := itemOf(tx, m, itemID)
		if err != nil {
			return err
		}
		if err := tx.Delete(item).Error; err != nil {
			return internal("item delete", err)
		}
		return nil
	})
}
