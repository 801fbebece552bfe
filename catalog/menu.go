package catalog

import (
	"context"

	"qr-menu-api/models"

	"gorm.io/gorm"
)

type MenuInput struct {
	Name         string
	Description  string
	Slug         string
	IsPublished  *bool
	IsActive     *bool
	DisplayOrder *int
}

// slugTaken reports whether any menu other than excludeID already uses slug.
func slugTaken(tx *gorm.DB, slug, excludeID string) (bool, error) {
	q := tx.Model(&models.Menu{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, internal("slug check", err)
	}
	return count > 0, nil
}

// CreateMenu creates a menu for the caller's restaurant. Slug uniqueness is
// global: a collision rejects the create, even across restaurants.
func (s *Service) CreateMenu(ctx context.Context, ownerID string, in MenuInput) (*models.Menu, error) {
	if in.Name == "" {
		return nil, invalidf("name is required")
	}

	var m *models.Menu
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := restaurantOf(tx, ownerID)
		if err != nil {
			return err
		}

		slug := in.Slug
		if slug == "" {
			slug = deriveSlug(in.Name, r.ID)
		}
		taken, err := slugTaken(tx, slug, "")
		if err != nil {
			return err
		}
		if taken {
			return conflictf("slug %q is already in use", slug)
		}

		m = &models.Menu{
			RestaurantID: r.ID,
			Name:         in.Name,
			Description:  in.Description,
			Slug:         slug,
			IsActive:     true,
		}
		if in.IsPublished != nil {
			m.IsPublished = *in.IsPublished
		}
		if in.IsActive != nil {
			m.IsActive = *in.IsActive
		}
		if in.DisplayOrder != nil {
			m.DisplayOrder = *in.DisplayOrder
		}
		if err := tx.Create(m).Error; err != nil {
			return internal("menu create", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListMenus returns the caller's menus ordered for the owner dashboard.
func (s *Service) ListMenus(ctx context.Context, ownerID string) ([]models.Menu, error) {
	r, err := restaurantOf(s.db.WithContext(ctx), ownerID)
	if err != nil {
		return nil, err
	}
	var menus []models.Menu
	if err := s.db.WithContext(ctx).
		Where("restaurant_id = ?", r.ID).
		Order("display_order asc, created_at asc").
		Find(&menus).Error; err != nil {
		return nil, internal("menu list", err)
	}
	return menus, nil
}

func (s *Service) GetMenu(ctx context.Context, ownerID, menuID string) (*models.Menu, error) {
	_, m, err := menuOf(s.db.WithContext(ctx), ownerID, menuID)
	return m, err
}

type MenuPatch struct {
	Name         *string
	Description  *string
	Slug         *string
	IsPublished  *bool
	IsActive     *bool
	DisplayOrder *int
}

// UpdateMenu applies a partial update. A changed slug is re-checked for
// global uniqueness, excluding the menu's own row.
func (s *Service) UpdateMenu(ctx context.Context, ownerID, menuID string, patch MenuPatch) (*models.Menu, error) {
	var m *models.Menu
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		_, m, err = menuOf(tx, ownerID, menuID)
		if err != nil {
			return err
		}

		update := map[string]interface{}{}
		if patch.Name != nil {
			if *patch.Name == "" {
				return invalidf("name is required")
			}
			update["name"] = *patch.Name
		}
		if patch.Description != nil {
			update["description"] = *patch.Description
		}
		if patch.Slug != nil && *patch.Slug != m.Slug {
			if *patch.Slug == "" {
				return invalidf("slug cannot be empty")
			}
			taken, err := slugTaken(tx, *patch.Slug, m.ID)
			if err != nil {
				return err
			}
			if taken {
				return conflictf("slug %q is already in use", *patch.Slug)
			}
			update["slug"] = *patch.Slug
		}
		if patch.IsPublished != nil {
			update["is_published"] = *patch.IsPublished
		}
		if patch.IsActive != nil {
			update["is_active"] = *patch.IsActive
		}
		if patch.DisplayOrder != nil {
			update["display_order"] = *patch.DisplayOrder
		}

		if len(update) > 0 {
			if err := tx.Model(m).Updates(update).Error; err != nil {
				return internal("menu update", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMenu removes the menu and, through the cascade, its categories and
// items, inside one transaction.
func (s *Service) DeleteMenu(ctx context.Context, ownerID, menuID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, m, err := menuOf(tx, ownerID, menuID)
		if err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", m.ID).Delete(&models.Item{}).Error; err != nil {
			return internal("menu item cascade", err)
		}
		if err := tx.Where("menu_id = ?", m.ID).Delete(&models.Category{}).Error; err != nil {
			return internal("menu category cascade", err)
		}
		if err := tx.Delete(m).Error; err != nil {
			return internal("menu delete", err)
		}
		return nil
	})
}
