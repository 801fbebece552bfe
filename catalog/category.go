package catalog

import (
	"context"

	"qr-menu-api/models"

	"gorm.io/gorm"
)

type CategoryInput struct {
	Name        string
	Description string
	IsActive    *bool
}

// nextSortOrder reads the current max sort order for a menu scope. Two
// concurrent creates may both observe the same max and end up with equal
// sort orders; created_at breaks the tie downstream.
func nextSortOrder(tx *gorm.DB, model interface{}, menuID string) (int, error) {
	var max int
	err := tx.Model(model).Where("menu_id = ?", menuID).
		Select("COALESCE(MAX(sort_order), 0)").Scan(&max).Error
	if err != nil {
		return 0, internal("sort order scan", err)
	}
	return max + 1, nil
}

// CreateCategory appends a category to the menu with sort order max+1.
func (s *Service) CreateCategory(ctx context.Context, ownerID, menuID string, in CategoryInput) (*models.Category, error) {
	if in.Name == "" {
		return nil, invalidf("name is required")
	}

	var cat *models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, m, err := menuOf(tx, ownerID, menuID)
		if err != nil {
			return err
		}
		order, err := nextSortOrder(tx, &models.Category{}, m.ID)
		if err != nil {
			return err
		}

		cat = &models.Category{
			MenuID:      m.ID,
			Name:        in.Name,
			Description: in.Description,
			SortOrder:   order,
			IsActive:    true,
		}
		if in.IsActive != nil {
			cat.IsActive = *in.IsActive
		}
		if err := tx.Create(cat).Error; err != nil {
			return internal("category create", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// ListCategories returns the menu's categories in owner-dashboard order.
func (s *Service) ListCategories(ctx context.Context, ownerID, menuID string) ([]models.Category, error) {
	_, m, err := menuOf(s.db.WithContext(ctx), ownerID, menuID)
	if err != nil {
		return nil, err
	}
	var cats []models.Category
	if err := s.db.WithContext(ctx).
		Where("menu_id = ?", m.ID).
		Order("sort_order asc, created_at asc").
		Find(&cats).Error; err != nil {
		return nil, internal("category list", err)
	}
	return cats, nil
}

type CategoryPatch struct {
	Name         *string
	Description  *string
	DisplayOrder *int
	IsActive     *bool
}

func (s *Service) UpdateCategory(ctx context.Context, ownerID, menuID, categoryID string, patch CategoryPatch) (*models.Category, error) {
	_, m, err := menuOf(s.db.WithContext(ctx), ownerID, menuID)
	if err != nil {
		return nil, err
	}
	cat, err := categoryOf(s.db.WithContext(ctx), m, categoryID)
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
	if patch.Description != nil {
		update["description"] = *patch.Description
	}
	if patch.DisplayOrder != nil {
		update["display_order"] = *patch.DisplayOrder
	}
	if patch.IsActive != nil {
		update["is_active"] = *patch.IsActive
	}

	if len(update) > 0 {
		if err := s.db.WithContext(ctx).Model(cat).Updates(update).Error; err != nil {
			return nil, internal("category update", err)
		}
	}
	return cat, nil
}

// DeleteCategory removes the category and every item that references it.
// The item sweep and the category delete run in one transaction; the caller
// gets back the ids of the removed items.
func (s *Service) DeleteCategory(ctx context.Context, ownerID, menuID, categoryID string) ([]string, error) {
	var removed []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, m, err := menuOf(tx, ownerID, menuID)
		if err != nil {
			return err
		}
		cat, err := categoryOf(tx, m, categoryID)
		if err != nil {
			return err
		}

		var items []models.Item
		if err := tx.Where("category_id = ? AND menu_id = ?", cat.ID, m.ID).Find(&items).Error; err != nil {
			return internal("category item sweep", err)
		}
		removed = make([]string, 0, len(items))
		for _, it := range items {
			removed = append(removed, it.ID)
		}
		if len(items) > 0 {
			if err := tx.Where("category_id = ? AND menu_id = ?", cat.ID, m.ID).
				Delete(&models.Item{}).Error; err != nil {
				return internal("category item delete", err)
			}
		}
		if err := tx.Delete(cat).Error; err != nil {
			return internal("category delete", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}
